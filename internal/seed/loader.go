package seed

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	catalogdb "github.com/mrlokans/learning/internal/database/catalog"
	"github.com/mrlokans/learning/internal/database/users"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

// Result counts what a Load inserted or reused.
type Result struct {
	TeachersCreated int
	TeachersReused  int
	Courses         int
	CoursesSkipped  int
	Modules         int
	Lessons         int
	Assignments     int
	Quizzes         int
}

func (r Result) String() string {
	return fmt.Sprintf("teachers: %d created, %d reused; courses: %d created, %d skipped; "+
		"modules: %d; lessons: %d; assignments: %d; quizzes: %d",
		r.TeachersCreated, r.TeachersReused, r.Courses, r.CoursesSkipped,
		r.Modules, r.Lessons, r.Assignments, r.Quizzes)
}

type Loader struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLoader(db *gorm.DB, log *logger.Logger) *Loader {
	return &Loader{db: db, log: log.With("component", "seed")}
}

// Load validates the fixture and writes it in a single transaction, so a
// failing row leaves the database untouched. Teachers already present are
// matched by email and reused. Courses whose title already exists are
// skipped along with everything nested under them, which makes loading the
// same file twice a no-op.
func (l *Loader) Load(f *File) (Result, error) {
	var res Result
	if err := f.Validate(); err != nil {
		return res, err
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		people := users.NewRepository(tx)
		courses := catalogdb.NewRepository(tx)

		teachers := make(map[string]uint, len(f.Teachers))
		for _, t := range f.Teachers {
			id, created, err := ensureTeacher(people, t)
			if err != nil {
				return fmt.Errorf("teacher %q: %w", t.Email, err)
			}
			teachers[t.Email] = id
			if created {
				res.TeachersCreated++
			} else {
				res.TeachersReused++
			}
		}

		for _, c := range f.Courses {
			exists, err := courses.CourseExists(c.Title)
			if err != nil {
				return err
			}
			if exists {
				l.log.Info("course already present, skipping", "title", c.Title)
				res.CoursesSkipped++
				continue
			}

			teacherID, err := resolveTeacher(people, teachers, c.Teacher)
			if err != nil {
				return fmt.Errorf("course %q: %w", c.Title, err)
			}
			if err := insertCourse(tx, c, teacherID, &res); err != nil {
				return fmt.Errorf("course %q: %w", c.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	l.log.Info("fixture loaded", "result", res.String())
	return res, nil
}

// ensureTeacher reuses the first user with the teacher's email, whatever its
// role, or creates one.
func ensureTeacher(people *users.Repository, t Teacher) (uint, bool, error) {
	existing, err := people.GetUserByEmail(t.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return 0, false, err
	}

	user := &entities.User{
		FirstName: t.FirstName,
		LastName:  t.LastName,
		Email:     t.Email,
		Password:  t.Password,
		Role:      t.role(),
	}
	if err := people.CreateUser(user); err != nil {
		return 0, false, err
	}
	return user.ID, true, nil
}

// resolveTeacher looks the email up among the fixture's teachers first, then
// in the users table. An empty email means the course has no teacher.
func resolveTeacher(people *users.Repository, teachers map[string]uint, email string) (*uint, error) {
	if email == "" {
		return nil, nil
	}
	if id, ok := teachers[email]; ok {
		return &id, nil
	}

	user, err := people.GetUserByEmail(email)
	if errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown teacher %q", ErrInvalidFixture, email)
	}
	if err != nil {
		return nil, err
	}
	teachers[email] = user.ID
	return &user.ID, nil
}

func insertCourse(tx *gorm.DB, c Course, teacherID *uint, res *Result) error {
	// Dates were checked by Validate
	start, _ := parseDate(c.StartDate)
	end, _ := parseDate(c.EndDate)

	course := &entities.Course{
		Title:       c.Title,
		Description: c.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      entities.CourseStatus(c.Status),
		TeacherID:   teacherID,
	}
	if err := tx.Create(course).Error; err != nil {
		return err
	}
	res.Courses++

	for _, m := range c.Modules {
		module := &entities.Module{
			Title:       m.Title,
			Description: m.Description,
			OrderIndex:  m.Order,
			CourseID:    course.ID,
		}
		if err := tx.Create(module).Error; err != nil {
			return fmt.Errorf("module %q: %w", m.Title, err)
		}
		res.Modules++

		for _, ls := range m.Lessons {
			if err := insertLesson(tx, ls, module.ID, res); err != nil {
				return fmt.Errorf("module %q: lesson %q: %w", m.Title, ls.Title, err)
			}
		}
	}
	return nil
}

func insertLesson(tx *gorm.DB, ls Lesson, moduleID uint, res *Result) error {
	lesson := &entities.Lesson{
		Title:       ls.Title,
		Description: ls.Description,
		ModuleID:    moduleID,
		Type:        entities.LessonType(ls.Type),
	}
	if err := tx.Create(lesson).Error; err != nil {
		return err
	}
	res.Lessons++

	for _, a := range ls.Assignments {
		due, _ := parseDate(a.DueDate)
		assignment := &entities.Assignment{
			Title:       a.Title,
			Description: a.Description,
			DueDate:     due,
			LessonID:    lesson.ID,
			Status:      entities.AssignmentStatus(a.Status),
		}
		if err := tx.Create(assignment).Error; err != nil {
			return fmt.Errorf("assignment %q: %w", a.Title, err)
		}
		res.Assignments++
	}

	for _, q := range ls.Quizzes {
		quiz := &entities.Quiz{
			Title:         q.Title,
			Description:   q.Description,
			LessonID:      lesson.ID,
			QuestionCount: q.Questions,
		}
		if err := tx.Create(quiz).Error; err != nil {
			return fmt.Errorf("quiz %q: %w", q.Title, err)
		}
		res.Quizzes++
	}
	return nil
}
