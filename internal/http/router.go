package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/auth"
	"github.com/mrlokans/learning/internal/demo"
	"github.com/mrlokans/learning/internal/logger"
)

// NewRouter creates and configures the HTTP router with all endpoints.
//
// Registration, login and logout are public. Every catalog route requires a
// session created by login, which is how a client moves from the login
// screen to the catalog.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())
	if cfg.SecureCookies {
		router.Use(auth.StrictTransportSecurityMiddleware(31536000))
	}

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave(log))
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	if dm := demo.NewMiddleware(cfg.DemoMode); dm.IsEnabled() {
		log.Info("demo mode enabled, registration is disabled")
		api.Use(dm.Handler())
	}

	// Clients fetch a token here before their first POST
	api.GET("/csrf", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": auth.GetCSRFToken(c)})
	})

	accounts := NewAccountsController(cfg.Accounts, cfg.Catalog, cfg.SessionManager, cfg.Audit, log)
	api.POST("/register", accounts.Register)
	api.POST("/login", accounts.Login)
	api.POST("/logout", accounts.Logout)

	catalogRoutes := api.Group("")
	if cfg.SessionManager != nil && cfg.AuthService != nil {
		catalogRoutes.Use(auth.NewMiddleware(cfg.AuthService, cfg.SessionManager).RequireSession())
	}

	catalogRoutes.GET("/me", accounts.Me)

	catalog := NewCatalogController(cfg.Catalog, log)
	catalogRoutes.GET("/courses", catalog.ListCourses)
	catalogRoutes.GET("/modules", catalog.ListModules)
	catalogRoutes.GET("/lessons", catalog.ListLessons)
	catalogRoutes.GET("/assignments", catalog.ListAssignments)
	catalogRoutes.GET("/quizzes", catalog.ListQuizzes)
	catalogRoutes.GET("/search", catalog.Search)

	return router
}
