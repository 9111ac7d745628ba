package http

import (
	"github.com/mrlokans/learning/internal/catalog"
	"github.com/mrlokans/learning/internal/entities"
)

// This file consolidates the service interfaces used by HTTP controllers.

// AccountService registers and authenticates users.
type AccountService interface {
	Register(firstName, lastName, email, password string) (uint, error)
	Authenticate(email, password string) (*entities.User, error)
}

// CatalogBrowser provides read access to the catalog.
type CatalogBrowser interface {
	ListCourses() ([]string, error)
	ListModules(courseTitle string) ([]string, error)
	ListLessons(moduleTitle string) ([]string, error)
	ListAssignments(lessonTitle string) ([]string, error)
	ListQuizzes(lessonTitle string) ([]string, error)
	Search(q catalog.Query) ([]entities.Record, error)
}

// AuditLogger records account activity. It never fails the request.
type AuditLogger interface {
	LogAuth(eventType entities.AuditEventType, userID *uint, ipAddr, userAgent string, err error)
}
