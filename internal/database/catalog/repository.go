// Package catalog provides read access to the course hierarchy:
// courses → modules → lessons → assignments (and quizzes).
//
// Parents are looked up by title. When several rows share a title the one
// with the lowest id wins; callers get no stronger guarantee than that.
package catalog

import (
	"gorm.io/gorm"

	"github.com/mrlokans/learning/internal/entities"
)

// SearchQuery holds the four independent search terms. Empty fields are
// skipped.
type SearchQuery struct {
	Course     string // exact title
	Module     string // substring of title
	Lesson     string // substring of title
	Assignment string // substring of title
}

// IsEmpty reports whether no search term is set.
func (q SearchQuery) IsEmpty() bool {
	return q.Course == "" && q.Module == "" && q.Lesson == "" && q.Assignment == ""
}

// Repository handles catalog reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CourseTitles returns every course title in id order.
func (r *Repository) CourseTitles() ([]string, error) {
	var titles []string
	if err := r.db.Model(&entities.Course{}).Order("id").Pluck("title", &titles).Error; err != nil {
		return nil, err
	}
	return nonNil(titles), nil
}

// CourseExists reports whether any course is titled exactly title.
func (r *Repository) CourseExists(title string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Course{}).Where("title = ?", title).Count(&n).Error
	return n > 0, err
}

// ModuleTitles returns the modules of the first course titled courseTitle,
// in display order.
func (r *Repository) ModuleTitles(courseTitle string) ([]string, error) {
	return r.childTitles(&entities.Course{}, courseTitle, &entities.Module{}, "course_id", "order_index, id")
}

// LessonTitles returns the lessons of the first module titled moduleTitle.
func (r *Repository) LessonTitles(moduleTitle string) ([]string, error) {
	return r.childTitles(&entities.Module{}, moduleTitle, &entities.Lesson{}, "module_id", "id")
}

// AssignmentTitles returns the assignments of the first lesson titled lessonTitle.
func (r *Repository) AssignmentTitles(lessonTitle string) ([]string, error) {
	return r.childTitles(&entities.Lesson{}, lessonTitle, &entities.Assignment{}, "lesson_id", "id")
}

// QuizTitles returns the quizzes of the first lesson titled lessonTitle.
func (r *Repository) QuizTitles(lessonTitle string) ([]string, error) {
	return r.childTitles(&entities.Lesson{}, lessonTitle, &entities.Quiz{}, "lesson_id", "id")
}

// childTitles resolves the parent and lists its children inside one read
// transaction. A missing parent yields an empty list.
func (r *Repository) childTitles(parent any, parentTitle string, child any, foreignKey, order string) ([]string, error) {
	titles := []string{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		parentID, found, err := resolveID(tx, parent, parentTitle)
		if err != nil || !found {
			return err
		}
		return tx.Model(child).
			Where(foreignKey+" = ?", parentID).
			Order(order).
			Pluck("title", &titles).Error
	})
	if err != nil {
		return nil, err
	}
	return nonNil(titles), nil
}

// resolveID maps a title to the id of the first matching row.
func resolveID(tx *gorm.DB, model any, title string) (uint, bool, error) {
	var ids []uint
	err := tx.Model(model).
		Where("title = ?", title).
		Order("id").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// Search runs one lookup per non-empty term and concatenates the rows in the
// order courses, modules, lessons, assignments. Course matches are exact;
// the others are case-sensitive literal substring matches. Results are not
// deduplicated nor filtered by parent.
func (r *Repository) Search(q SearchQuery) ([]entities.Record, error) {
	results := []entities.Record{}
	if q.IsEmpty() {
		return results, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if q.Course != "" {
			var courses []entities.Course
			if err := tx.Where("title = ?", q.Course).Order("id").Find(&courses).Error; err != nil {
				return err
			}
			for _, c := range courses {
				results = append(results, c)
			}
		}
		if q.Module != "" {
			var modules []entities.Module
			if err := titleContains(tx, q.Module).Find(&modules).Error; err != nil {
				return err
			}
			for _, m := range modules {
				results = append(results, m)
			}
		}
		if q.Lesson != "" {
			var lessons []entities.Lesson
			if err := titleContains(tx, q.Lesson).Find(&lessons).Error; err != nil {
				return err
			}
			for _, l := range lessons {
				results = append(results, l)
			}
		}
		if q.Assignment != "" {
			var assignments []entities.Assignment
			if err := titleContains(tx, q.Assignment).Find(&assignments).Error; err != nil {
				return err
			}
			for _, a := range assignments {
				results = append(results, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// titleContains uses instr() rather than LIKE: SQLite's LIKE folds ASCII
// case and treats % and _ in the keyword as wildcards.
func titleContains(tx *gorm.DB, keyword string) *gorm.DB {
	return tx.Where("instr(title, ?) > 0", keyword).Order("id")
}

func nonNil(titles []string) []string {
	if titles == nil {
		return []string{}
	}
	return titles
}
