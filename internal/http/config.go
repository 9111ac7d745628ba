package http

import (
	"github.com/mrlokans/learning/internal/auth"
	"github.com/mrlokans/learning/internal/database"
	"github.com/mrlokans/learning/internal/logger"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Accounts AccountService
	Catalog  CatalogBrowser
	Database *database.Database
	Logger   *logger.Logger
	Audit    AuditLogger

	// Sessions. AuthService backs the RequireSession guard.
	AuthService    *auth.Service
	SessionManager *auth.SessionManager

	// CSRF protection is enabled when the secret is non-empty
	CSRFSecret    []byte
	SecureCookies bool

	// DemoMode rejects writes other than login and logout
	DemoMode bool

	// Application info
	Version string
}
