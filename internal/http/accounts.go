package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/auth"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	ID uint `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated user together with the course
// list, so a client can render the catalog straight after logging in.
type LoginResponse struct {
	User    *entities.User `json:"user"`
	Courses []string       `json:"courses"`
}

// MeResponse describes the logged-in user and when the session started.
type MeResponse struct {
	User    *entities.User `json:"user"`
	LoginAt *time.Time     `json:"login_at,omitempty"`
}

// AccountsController handles registration and the login/logout session
// lifecycle.
type AccountsController struct {
	accounts AccountService
	catalog  CatalogBrowser
	sessions *auth.SessionManager
	audit    AuditLogger
	log      *logger.Logger
}

func NewAccountsController(accounts AccountService, catalog CatalogBrowser, sessions *auth.SessionManager, audit AuditLogger, log *logger.Logger) *AccountsController {
	return &AccountsController{
		accounts: accounts,
		catalog:  catalog,
		sessions: sessions,
		audit:    audit,
		log:      log,
	}
}

func (ac *AccountsController) record(c *gin.Context, eventType entities.AuditEventType, userID *uint, err error) {
	if ac.audit == nil {
		return
	}
	ac.audit.LogAuth(eventType, userID, c.ClientIP(), c.Request.UserAgent(), err)
}

// Register creates a student account. It does not log the user in.
func (ac *AccountsController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := ac.accounts.Register(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		ac.record(c, entities.AuditEventRegister, nil, err)
		respondServiceError(c, ac.log, err, "register")
		return
	}
	ac.record(c, entities.AuditEventRegister, &id, nil)

	respondCreated(c, RegisterResponse{ID: id})
}

// Login authenticates the user, loads the course list and starts a session.
func (ac *AccountsController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := ac.accounts.Authenticate(req.Email, req.Password)
	if err != nil {
		ac.record(c, entities.AuditEventLogin, nil, err)
		respondServiceError(c, ac.log, err, "login")
		return
	}

	courses, err := ac.catalog.ListCourses()
	if err != nil {
		respondServiceError(c, ac.log, err, "login: list courses")
		return
	}

	if ac.sessions != nil {
		if err := ac.sessions.CreateSession(c.Request, user); err != nil {
			respondInternalError(c, ac.log, err, "login: create session")
			return
		}
	}

	ac.record(c, entities.AuditEventLogin, &user.ID, nil)
	c.JSON(http.StatusOK, LoginResponse{User: user, Courses: courses})
}

// Logout destroys the current session, if any.
func (ac *AccountsController) Logout(c *gin.Context) {
	var userID *uint
	if ac.sessions != nil {
		if data := ac.sessions.GetSessionData(c.Request); data != nil {
			userID = &data.UserID
		}
		if err := ac.sessions.DestroySession(c.Request); err != nil {
			respondInternalError(c, ac.log, err, "logout")
			return
		}
	}
	if userID != nil {
		ac.record(c, entities.AuditEventLogout, userID, nil)
	}
	respondSuccess(c, "logged out")
}

// Me returns the user behind the current session. It runs behind
// RequireSession.
func (ac *AccountsController) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	resp := MeResponse{User: user}
	if ac.sessions != nil {
		if data := ac.sessions.GetSessionData(c.Request); data != nil && !data.LoginAt.IsZero() {
			resp.LoginAt = &data.LoginAt
		}
	}
	c.JSON(http.StatusOK, resp)
}
