// Package auth is the account directory: it registers students and
// authenticates users against the users table, and provides the session and
// request guards the HTTP server puts in front of the catalog.
//
// Passwords are stored and compared as plaintext. There is no hashing and no
// rate limiting.
//
// # Errors
//
// Register and Authenticate return one of:
//
//	*ValidationError        // a required field was empty; errors.Is(err, ErrValidation)
//	ErrEmailTaken           // Register only
//	ErrInvalidCredentials   // Authenticate only; not a storage fault
//	*database.StorageError  // anything the store failed on
//
// # Configuration
//
//	AUTH_SESSION_SECRET=<32 bytes>  # CSRF key; random per process if empty
//	AUTH_SESSION_LIFETIME=24h       # Session duration
//	AUTH_SECURE_COOKIES=true        # HTTPS-only cookies
//
// # Usage
//
//	authService := auth.NewService(users.NewRepository(db.DB), log)
//	sm, _ := auth.NewSessionManager(sqlDB, cfg.Auth)
//	router.Use(sm.SessionLoadSave(log))
//	api.Use(auth.NewMiddleware(authService, sm).RequireSession())
package auth
