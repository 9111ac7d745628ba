// Package seed loads catalog fixtures from YAML into the database.
//
// The catalog is read-only for the rest of the application, so this is the
// way courses, modules, lessons, assignments and quizzes get into a fresh
// database. A fixture looks like:
//
//	teachers:
//	  - {first_name: Ada, last_name: Lovelace, email: ada@example.com, password: secret}
//	courses:
//	  - title: Algebra
//	    status: active
//	    teacher: ada@example.com
//	    start_date: 2024-09-01
//	    modules:
//	      - title: Intro to Algebra
//	        order: 1
//	        lessons:
//	          - title: Variables
//	            type: video
//	            assignments: [{title: Worksheet 1, status: not done, due_date: 2024-09-10}]
//	            quizzes: [{title: Variables check, questions: 5}]
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/learning/internal/entities"
)

// DateLayout is the format of every date in a fixture.
const DateLayout = "2006-01-02"

// ErrInvalidFixture is matched by every validation failure of a fixture.
var ErrInvalidFixture = errors.New("invalid fixture")

type File struct {
	Teachers []Teacher `yaml:"teachers"`
	Courses  []Course  `yaml:"courses"`
}

type Teacher struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Role      string `yaml:"role"` // teacher (default) or admin
}

func (t Teacher) role() entities.UserRole {
	if t.Role == "" {
		return entities.UserRoleTeacher
	}
	return entities.UserRole(t.Role)
}

type Course struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Teacher     string   `yaml:"teacher"` // teacher email
	StartDate   string   `yaml:"start_date"`
	EndDate     string   `yaml:"end_date"`
	Modules     []Module `yaml:"modules"`
}

type Module struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Order       int      `yaml:"order"`
	Lessons     []Lesson `yaml:"lessons"`
}

type Lesson struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Type        string       `yaml:"type"`
	Assignments []Assignment `yaml:"assignments"`
	Quizzes     []Quiz       `yaml:"quizzes"`
}

type Assignment struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	DueDate     string `yaml:"due_date"`
}

type Quiz struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Questions   int    `yaml:"questions"`
}

// Parse decodes a fixture. Unknown keys are rejected so typos surface
// instead of silently dropping data.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &f, nil
}

// ParseFile opens and decodes the fixture at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Validate checks required fields, enum values and dates. It reports every
// problem at once. Teacher references are checked by the loader, since a
// teacher may already exist in the database.
func (f *File) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := make(map[string]bool)
	for i, t := range f.Teachers {
		if t.FirstName == "" || t.LastName == "" || t.Email == "" || t.Password == "" {
			add("teachers[%d]: first_name, last_name, email and password are required", i)
		}
		if role := t.role(); !role.IsValid() || role == entities.UserRoleStudent {
			add("teachers[%d]: role must be teacher or admin, got %q", i, t.Role)
		}
		if seen[t.Email] {
			add("teachers[%d]: duplicate email %q", i, t.Email)
		}
		seen[t.Email] = true
	}

	for ci, c := range f.Courses {
		where := fmt.Sprintf("courses[%d]", ci)
		if c.Title == "" {
			add("%s: title is required", where)
		}
		if !entities.CourseStatus(c.Status).IsValid() {
			add("%s: unknown status %q", where, c.Status)
		}
		if _, err := parseDate(c.StartDate); err != nil {
			add("%s: start_date: %v", where, err)
		}
		if _, err := parseDate(c.EndDate); err != nil {
			add("%s: end_date: %v", where, err)
		}

		for mi, m := range c.Modules {
			where := fmt.Sprintf("courses[%d].modules[%d]", ci, mi)
			if m.Title == "" {
				add("%s: title is required", where)
			}

			for li, l := range m.Lessons {
				where := fmt.Sprintf("%s.lessons[%d]", where, li)
				if l.Title == "" {
					add("%s: title is required", where)
				}
				if !entities.LessonType(l.Type).IsValid() {
					add("%s: unknown type %q", where, l.Type)
				}
				for ai, a := range l.Assignments {
					if a.Title == "" {
						add("%s.assignments[%d]: title is required", where, ai)
					}
					if !entities.AssignmentStatus(a.Status).IsValid() {
						add("%s.assignments[%d]: unknown status %q", where, ai, a.Status)
					}
					if _, err := parseDate(a.DueDate); err != nil {
						add("%s.assignments[%d]: due_date: %v", where, ai, err)
					}
				}
				for qi, q := range l.Quizzes {
					if q.Title == "" {
						add("%s.quizzes[%d]: title is required", where, qi)
					}
					if q.Questions < 0 {
						add("%s.quizzes[%d]: questions must not be negative", where, qi)
					}
				}
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidFixture, strings.Join(problems, "\n  "))
	}
	return nil
}

// parseDate returns nil for an empty value.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return &t, nil
}
