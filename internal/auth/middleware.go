package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/database/users"
	"github.com/mrlokans/learning/internal/entities"
)

// ContextKeyUser holds the *entities.User accepted by RequireSession.
const ContextKeyUser = "auth_user"

// Middleware guards routes that need a logged-in user.
type Middleware struct {
	service        *Service
	sessionManager *SessionManager
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, sessionManager *SessionManager) *Middleware {
	return &Middleware{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RequireSession aborts with 401 unless the session belongs to an existing
// user. On success the user is stored in the Gin context for CurrentUser.
// SessionLoadSave must run before it.
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.sessionManager.IsAuthenticated(c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}
		userID := m.sessionManager.GetUserID(c.Request)

		user, err := m.service.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				// Account removed while the session was alive
				_ = m.sessionManager.DestroySession(c.Request)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "authentication required",
				})
				return
			}
			m.service.log.Error("session user lookup failed", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "internal error",
			})
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser returns the user RequireSession accepted, or nil outside a
// protected route.
func CurrentUser(c *gin.Context) *entities.User {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}
