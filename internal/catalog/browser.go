// Package catalog is the read side of the learning catalog. It answers the
// cascading lookups a client makes while drilling down
// course → module → lesson → assignment, plus a flat keyword search.
//
// Catalog rows are never written here. They come from the seed command or
// from whoever else manages the database file.
package catalog

import (
	"github.com/mrlokans/learning/internal/database"
	catalogdb "github.com/mrlokans/learning/internal/database/catalog"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

// Query holds the search terms. Course must match a title exactly, the
// others match any title containing them. Empty terms are ignored.
type Query = catalogdb.SearchQuery

// Repository is the storage the browser reads from.
type Repository interface {
	CourseTitles() ([]string, error)
	ModuleTitles(courseTitle string) ([]string, error)
	LessonTitles(moduleTitle string) ([]string, error)
	AssignmentTitles(lessonTitle string) ([]string, error)
	QuizTitles(lessonTitle string) ([]string, error)
	Search(q catalogdb.SearchQuery) ([]entities.Record, error)
}

var _ Repository = (*catalogdb.Repository)(nil)

// Browser serves catalog lookups. All list results are non-nil.
type Browser struct {
	repo Repository
	log  *logger.Logger
}

func NewBrowser(repo Repository, log *logger.Logger) *Browser {
	return &Browser{
		repo: repo,
		log:  log.With("component", "catalog"),
	}
}

// ListCourses returns every course title in insertion order.
func (b *Browser) ListCourses() ([]string, error) {
	titles, err := b.repo.CourseTitles()
	if err != nil {
		return nil, b.fail("list courses", err)
	}
	return titles, nil
}

// ListModules returns the module titles of the course named courseTitle in
// display order. An unknown course gives an empty list.
func (b *Browser) ListModules(courseTitle string) ([]string, error) {
	titles, err := b.repo.ModuleTitles(courseTitle)
	if err != nil {
		return nil, b.fail("list modules", err, "course", courseTitle)
	}
	return titles, nil
}

// ListLessons returns the lesson titles of the module named moduleTitle.
func (b *Browser) ListLessons(moduleTitle string) ([]string, error) {
	titles, err := b.repo.LessonTitles(moduleTitle)
	if err != nil {
		return nil, b.fail("list lessons", err, "module", moduleTitle)
	}
	return titles, nil
}

// ListAssignments returns the assignment titles of the lesson named lessonTitle.
func (b *Browser) ListAssignments(lessonTitle string) ([]string, error) {
	titles, err := b.repo.AssignmentTitles(lessonTitle)
	if err != nil {
		return nil, b.fail("list assignments", err, "lesson", lessonTitle)
	}
	return titles, nil
}

// ListQuizzes returns the quiz titles of the lesson named lessonTitle.
func (b *Browser) ListQuizzes(lessonTitle string) ([]string, error) {
	titles, err := b.repo.QuizTitles(lessonTitle)
	if err != nil {
		return nil, b.fail("list quizzes", err, "lesson", lessonTitle)
	}
	return titles, nil
}

// Search returns the matching rows, courses first, then modules, lessons and
// assignments. A query with no terms returns an empty result without
// touching the database.
func (b *Browser) Search(q Query) ([]entities.Record, error) {
	if q.IsEmpty() {
		return []entities.Record{}, nil
	}
	results, err := b.repo.Search(q)
	if err != nil {
		return nil, b.fail("search catalog", err)
	}
	b.log.Debug("catalog search", "course", q.Course, "module", q.Module,
		"lesson", q.Lesson, "assignment", q.Assignment, "results", len(results))
	return results, nil
}

func (b *Browser) fail(op string, err error, keysAndValues ...interface{}) error {
	b.log.Error(op+" failed", append(keysAndValues, "error", err)...)
	return database.Wrap(op, err)
}
