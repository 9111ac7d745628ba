package entities

import "time"

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"
)

// IsValid reports whether the role is one the users table accepts.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleTeacher, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	FirstName    string    `gorm:"column:first_name" json:"first_name"`
	LastName     string    `gorm:"column:last_name" json:"last_name"`
	Email        string    `gorm:"column:email" json:"email"`
	Password     string    `gorm:"column:password" json:"-"` // plaintext, never serialised
	Role         UserRole  `gorm:"column:role" json:"role"`
	RegisteredAt time.Time `gorm:"column:registered_at;autoCreateTime" json:"registered_at"`
}

func (User) TableName() string { return "users" }
