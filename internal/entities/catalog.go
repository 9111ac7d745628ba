package entities

import "time"

type CourseStatus string

const (
	CourseStatusActive   CourseStatus = "active"
	CourseStatusFinished CourseStatus = "finished"
)

func (s CourseStatus) IsValid() bool {
	return s == CourseStatusActive || s == CourseStatusFinished
}

type LessonType string

const (
	LessonTypeVideo LessonType = "video"
	LessonTypeText  LessonType = "text"
	LessonTypeQuiz  LessonType = "quiz"
)

func (t LessonType) IsValid() bool {
	switch t {
	case LessonTypeVideo, LessonTypeText, LessonTypeQuiz:
		return true
	}
	return false
}

type AssignmentStatus string

const (
	AssignmentStatusDone    AssignmentStatus = "done"
	AssignmentStatusNotDone AssignmentStatus = "not done"
)

func (s AssignmentStatus) IsValid() bool {
	return s == AssignmentStatusDone || s == AssignmentStatusNotDone
}

// Kind names the table a search Record came from.
type Kind string

const (
	KindCourse     Kind = "course"
	KindModule     Kind = "module"
	KindLesson     Kind = "lesson"
	KindAssignment Kind = "assignment"
)

// Record is a full catalog row of any kind, as returned by search.
type Record interface {
	Kind() Kind
	RecordTitle() string
}

type Course struct {
	ID          uint         `gorm:"column:id;primaryKey" json:"id"`
	Title       string       `gorm:"column:title" json:"title"`
	Description string       `gorm:"column:description" json:"description,omitempty"`
	StartDate   *time.Time   `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time   `gorm:"column:end_date" json:"end_date,omitempty"`
	Status      CourseStatus `gorm:"column:status" json:"status"`
	TeacherID   *uint        `gorm:"column:teacher_id" json:"teacher_id,omitempty"`
	Modules     []Module     `gorm:"foreignKey:CourseID" json:"-"`
}

func (Course) TableName() string     { return "courses" }
func (Course) Kind() Kind            { return KindCourse }
func (c Course) RecordTitle() string { return c.Title }

type Module struct {
	ID          uint     `gorm:"column:id;primaryKey" json:"id"`
	Title       string   `gorm:"column:title" json:"title"`
	Description string   `gorm:"column:description" json:"description,omitempty"`
	OrderIndex  int      `gorm:"column:order_index" json:"order_index"`
	CourseID    uint     `gorm:"column:course_id" json:"course_id"`
	Lessons     []Lesson `gorm:"foreignKey:ModuleID" json:"-"`
}

func (Module) TableName() string     { return "modules" }
func (Module) Kind() Kind            { return KindModule }
func (m Module) RecordTitle() string { return m.Title }

type Lesson struct {
	ID          uint         `gorm:"column:id;primaryKey" json:"id"`
	Title       string       `gorm:"column:title" json:"title"`
	Description string       `gorm:"column:description" json:"description,omitempty"`
	CreatedAt   time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ModuleID    uint         `gorm:"column:module_id" json:"module_id"`
	Type        LessonType   `gorm:"column:type" json:"type"`
	Assignments []Assignment `gorm:"foreignKey:LessonID" json:"-"`
	Quizzes     []Quiz       `gorm:"foreignKey:LessonID" json:"-"`
}

func (Lesson) TableName() string     { return "lessons" }
func (Lesson) Kind() Kind            { return KindLesson }
func (l Lesson) RecordTitle() string { return l.Title }

type Assignment struct {
	ID          uint             `gorm:"column:id;primaryKey" json:"id"`
	Title       string           `gorm:"column:title" json:"title"`
	Description string           `gorm:"column:description" json:"description,omitempty"`
	DueDate     *time.Time       `gorm:"column:due_date" json:"due_date,omitempty"`
	LessonID    uint             `gorm:"column:lesson_id" json:"lesson_id"`
	Status      AssignmentStatus `gorm:"column:status" json:"status"`
}

func (Assignment) TableName() string     { return "assignments" }
func (Assignment) Kind() Kind            { return KindAssignment }
func (a Assignment) RecordTitle() string { return a.Title }

// Quiz is a lesson's test. Quizzes are listed per lesson but not searched.
type Quiz struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	Title         string    `gorm:"column:title" json:"title"`
	Description   string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LessonID      uint      `gorm:"column:lesson_id" json:"lesson_id"`
	QuestionCount int       `gorm:"column:question_count" json:"question_count"`
}

func (Quiz) TableName() string { return "quizzes" }
