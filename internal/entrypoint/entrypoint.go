package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/audit"
	"github.com/mrlokans/learning/internal/auth"
	"github.com/mrlokans/learning/internal/catalog"
	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/database"
	auditdb "github.com/mrlokans/learning/internal/database/audit"
	catalogdb "github.com/mrlokans/learning/internal/database/catalog"
	"github.com/mrlokans/learning/internal/database/users"
	http_controllers "github.com/mrlokans/learning/internal/http"
	"github.com/mrlokans/learning/internal/logger"
)

// App holds the store handle and the services built on it. The CLI and the
// HTTP server share this wiring.
type App struct {
	DB       *database.Database
	Log      *logger.Logger
	Accounts *auth.Service
	Catalog  *catalog.Browser
	Audit    *audit.Service
}

// NewApp opens the database at dbPath (creating missing tables) and wires
// the services.
func NewApp(dbPath string, dbLogLevel string, log *logger.Logger) (*App, error) {
	db, err := database.NewDatabase(dbPath, database.ParseLogLevel(dbLogLevel))
	if err != nil {
		return nil, err
	}

	return &App{
		DB:       db,
		Log:      log,
		Accounts: auth.NewService(users.NewRepository(db.DB), log),
		Catalog:  catalog.NewBrowser(catalogdb.NewRepository(db.DB), log),
		Audit:    audit.NewService(auditdb.NewRepository(db.DB), log),
	}, nil
}

func (a *App) Close() error {
	a.Log.Sync()
	return a.DB.Close()
}

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the server until SIGINT or SIGTERM, then shuts it down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, log *logger.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server", "timeout", timeout.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

// Run builds everything the HTTP server needs from cfg and serves until
// interrupted.
func Run(cfg *config.Config, version string) error {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	log.Info("starting learning catalog", "version", version)

	app, err := NewApp(cfg.Database.Path, cfg.Database.LogLevel, log)
	if err != nil {
		return err
	}
	defer app.Close()
	log.Info("database ready", "path", cfg.Database.Path)

	if cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	sqlDB, err := app.DB.SQLDB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB for sessions: %w", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize session manager: %w", err)
	}

	csrfSecret, generated, err := auth.CSRFKey(cfg.Auth.SessionSecret)
	if err != nil {
		return fmt.Errorf("failed to generate CSRF secret: %w", err)
	}
	if generated {
		log.Warn("generated session secret, set AUTH_SESSION_SECRET to persist")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Accounts:       app.Accounts,
		Catalog:        app.Catalog,
		Database:       app.DB,
		Logger:         log,
		Audit:          app.Audit,
		AuthService:    app.Accounts,
		SessionManager: sessionManager,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		DemoMode:       cfg.Demo.Enabled,
		Version:        version,
	})

	return Serve(router, cfg, log, nil)
}
