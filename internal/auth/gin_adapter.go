package auth

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/logger"
)

// sessionResponseWriter commits the session and sets its cookie before the
// first byte of the response goes out. If the commit fails the handler's
// response is replaced by a 500.
type sessionResponseWriter struct {
	gin.ResponseWriter
	sm            *SessionManager
	log           *logger.Logger
	request       *http.Request
	wroteHeader   bool
	cookieWritten bool
	failed        bool
}

func (w *sessionResponseWriter) WriteHeader(code int) {
	if w.before() {
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionResponseWriter) WriteHeaderNow() {
	if w.before() {
		return
	}
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionResponseWriter) Write(b []byte) (int, error) {
	if w.before() {
		// The handler's body is dropped
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *sessionResponseWriter) WriteString(s string) (int, error) {
	if w.before() {
		return len(s), nil
	}
	return w.ResponseWriter.WriteString(s)
}

// before writes the session cookie on the first call and reports whether
// the response has been replaced by an error.
func (w *sessionResponseWriter) before() bool {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.writeSessionCookie()
	}
	return w.failed
}

func (w *sessionResponseWriter) writeSessionCookie() {
	if w.cookieWritten {
		return
	}
	w.cookieWritten = true

	ctx := w.request.Context()
	switch w.sm.Status(ctx) {
	case scs.Modified:
		token, expiry, err := w.sm.Commit(ctx)
		if err != nil {
			w.fail(err)
			return
		}
		w.sm.WriteSessionCookie(ctx, w.ResponseWriter, token, expiry)
	case scs.Destroyed:
		w.sm.WriteSessionCookie(ctx, w.ResponseWriter, "", time.Time{})
	}
}

func (w *sessionResponseWriter) fail(err error) {
	w.failed = true
	w.log.Error("session commit failed", "path", w.request.URL.Path, "error", err)

	w.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.ResponseWriter.WriteHeader(http.StatusInternalServerError)
	_, _ = w.ResponseWriter.Write([]byte(`{"error":"internal server error"}`))
}

// SessionLoadSave returns a Gin middleware that loads the session named by
// the request cookie and saves it when the handler responds. It must run
// before any session operation. Commit failures are logged to log.
func (sm *SessionManager) SessionLoadSave(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("component", "sessions")

	return func(c *gin.Context) {
		var token string
		cookie, err := c.Request.Cookie(sm.Cookie.Name)
		if err == nil {
			token = cookie.Value
		}

		ctx, err := sm.Load(c.Request.Context(), token)
		if err != nil {
			log.Error("session load failed", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.Request = c.Request.WithContext(ctx)

		srw := &sessionResponseWriter{
			ResponseWriter: c.Writer,
			sm:             sm,
			log:            log,
			request:        c.Request,
		}
		c.Writer = srw

		c.Next()

		// Handlers that write nothing still need the cookie
		if !srw.wroteHeader {
			srw.before()
		}
	}
}
