// Package users provides database operations for the users table.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	err := repo.CreateUser(&entities.User{Email: "a@b.c", ...})
//	user, err := repo.FindByCredentials("a@b.c", "secret")
package users

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/learning/internal/entities"
)

// ErrNotFound is returned when no user row matches a lookup.
var ErrNotFound = errors.New("user not found")

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts the user and fills in its ID.
func (r *Repository) CreateUser(user *entities.User) error {
	return r.db.Create(user).Error
}

// FindByCredentials returns the first user (lowest id) whose email and
// password both match exactly.
func (r *Repository) FindByCredentials(email, password string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ? AND password = ?", email, password).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CountUsers returns the number of rows in the users table.
func (r *Repository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}
