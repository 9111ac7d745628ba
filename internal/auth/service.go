package auth

import (
	"errors"

	"github.com/mrlokans/learning/internal/database"
	"github.com/mrlokans/learning/internal/database/users"
	"github.com/mrlokans/learning/internal/entities"
	"github.com/mrlokans/learning/internal/logger"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	CreateUser(user *entities.User) error
	FindByCredentials(email, password string) (*entities.User, error)
	GetUserByID(id uint) (*entities.User, error)
	CountUsers() (int64, error)
}

var _ UserRepository = (*users.Repository)(nil)

// Service registers and authenticates users. Passwords are stored and
// compared as plaintext.
type Service struct {
	users UserRepository
	log   *logger.Logger
}

// NewService creates a new authentication service.
func NewService(repo UserRepository, log *logger.Logger) *Service {
	return &Service{
		users: repo,
		log:   log.With("component", "auth"),
	}
}

// Register creates a student account and returns its ID. It does not start
// a session.
func (s *Service) Register(firstName, lastName, email, password string) (uint, error) {
	if err := requireFields(
		"first_name", firstName,
		"last_name", lastName,
		"email", email,
		"password", password,
	); err != nil {
		return 0, err
	}

	user := &entities.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      entities.UserRoleStudent,
	}

	if err := s.users.CreateUser(user); err != nil {
		if database.IsUniqueViolation(err) {
			return 0, ErrEmailTaken
		}
		s.log.Error("register failed", "email", email, "error", err)
		return 0, database.Wrap("register user", err)
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user.ID, nil
}

// Authenticate returns the user whose email and password match exactly.
// No table is written to, whatever the outcome.
func (s *Service) Authenticate(email, password string) (*entities.User, error) {
	if err := requireFields("email", email, "password", password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByCredentials(email, password)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.log.Info("authentication failed", "email", email)
			return nil, ErrInvalidCredentials
		}
		s.log.Error("authenticate failed", "email", email, "error", err)
		return nil, database.Wrap("authenticate user", err)
	}

	s.log.Info("user authenticated", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *Service) GetUserByID(id uint) (*entities.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, err
		}
		return nil, database.Wrap("get user", err)
	}
	return user, nil
}

// CountUsers returns how many accounts exist, of any role.
func (s *Service) CountUsers() (int64, error) {
	n, err := s.users.CountUsers()
	return n, database.Wrap("count users", err)
}
