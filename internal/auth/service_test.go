package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/learning/internal/database"
	"github.com/mrlokans/learning/internal/database/users"
	"github.com/mrlokans/learning/internal/entities"
	applog "github.com/mrlokans/learning/internal/logger"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "auth.db"), logger.Silent)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func setupService(t *testing.T) (*Service, *database.Database) {
	t.Helper()
	db := setupTestDB(t)
	return NewService(users.NewRepository(db.DB), applog.NewNop()), db
}

func countRows(t *testing.T, db *database.Database, table string) int64 {
	t.Helper()
	var count int64
	if err := db.DB.Table(table).Count(&count).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return count
}

func TestService_Register(t *testing.T) {
	svc, _ := setupService(t)

	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
		wantErr   error
		wantField string
	}{
		{
			name:      "valid student",
			firstName: "Ivan",
			lastName:  "Petrov",
			email:     "ivan@example.com",
			password:  "secret",
		},
		{
			name:      "missing first name",
			lastName:  "Petrov",
			email:     "x@example.com",
			password:  "secret",
			wantErr:   ErrValidation,
			wantField: "first_name",
		},
		{
			name:      "missing last name",
			firstName: "Ivan",
			email:     "x@example.com",
			password:  "secret",
			wantErr:   ErrValidation,
			wantField: "last_name",
		},
		{
			name:      "missing email",
			firstName: "Ivan",
			lastName:  "Petrov",
			password:  "secret",
			wantErr:   ErrValidation,
			wantField: "email",
		},
		{
			name:      "missing password",
			firstName: "Ivan",
			lastName:  "Petrov",
			email:     "x@example.com",
			wantErr:   ErrValidation,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.Register(tt.firstName, tt.lastName, tt.email, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("Register() error = %T, want *ValidationError", err)
				}
				if len(ve.Fields) != 1 || ve.Fields[0] != tt.wantField {
					t.Errorf("ValidationError.Fields = %v, want [%s]", ve.Fields, tt.wantField)
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() unexpected error = %v", err)
			}
			if id == 0 {
				t.Error("Register() returned zero id")
			}
		})
	}
}

func TestService_Register_AllFieldsMissing(t *testing.T) {
	svc, db := setupService(t)

	_, err := svc.Register("", "", "", "")

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Fields) != 4 {
		t.Errorf("expected 4 missing fields, got %v", ve.Fields)
	}
	if n := countRows(t, db, "users"); n != 0 {
		t.Errorf("users table has %d rows, want 0", n)
	}
}

func TestService_RegisterThenAuthenticate(t *testing.T) {
	svc, _ := setupService(t)

	id, err := svc.Register("Ivan", "Petrov", "ivan@example.com", "secret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := svc.Authenticate("ivan@example.com", "secret")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.ID != id {
		t.Errorf("user.ID = %d, want %d", user.ID, id)
	}
	if user.Role != entities.UserRoleStudent {
		t.Errorf("user.Role = %q, want %q", user.Role, entities.UserRoleStudent)
	}
	if user.FirstName != "Ivan" || user.LastName != "Petrov" {
		t.Errorf("unexpected name %q %q", user.FirstName, user.LastName)
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	svc, db := setupService(t)

	if _, err := svc.Register("Ivan", "Petrov", "ivan@example.com", "secret"); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register("Other", "Person", "ivan@example.com", "different")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken for duplicate email, got %v", err)
	}

	if n := countRows(t, db, "users"); n != 1 {
		t.Errorf("users table has %d rows, want exactly 1", n)
	}
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	svc, db := setupService(t)

	if _, err := svc.Register("Ivan", "Petrov", "ivan@example.com", "secret"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	before := countRows(t, db, "users")

	user, err := svc.Authenticate("ivan@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
	if user != nil {
		t.Error("Authenticate() returned a user for wrong password")
	}

	var se *database.StorageError
	if errors.As(err, &se) {
		t.Error("invalid credentials must not be reported as a storage fault")
	}

	if after := countRows(t, db, "users"); after != before {
		t.Errorf("users row count changed from %d to %d", before, after)
	}
}

func TestService_Authenticate_Validation(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.Authenticate("", "secret"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty email: got %v, want ErrValidation", err)
	}
	if _, err := svc.Authenticate("ivan@example.com", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty password: got %v, want ErrValidation", err)
	}
}

func TestService_Authenticate_UnknownEmail(t *testing.T) {
	svc, _ := setupService(t)

	if _, err := svc.Authenticate("nobody@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

// failingRepo simulates a broken store.
type failingRepo struct {
	err error
}

func (r failingRepo) CreateUser(*entities.User) error { return r.err }
func (r failingRepo) FindByCredentials(string, string) (*entities.User, error) {
	return nil, r.err
}
func (r failingRepo) GetUserByID(uint) (*entities.User, error) { return nil, r.err }
func (r failingRepo) CountUsers() (int64, error) { return 0, r.err }

func TestService_StorageErrors(t *testing.T) {
	cause := errors.New("database is locked")
	svc := NewService(failingRepo{err: cause}, applog.NewNop())

	_, err := svc.Register("Ivan", "Petrov", "ivan@example.com", "secret")
	var se *database.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("Register() error = %v, want *database.StorageError", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Register() error should wrap the cause")
	}

	_, err = svc.Authenticate("ivan@example.com", "secret")
	if !errors.As(err, &se) {
		t.Fatalf("Authenticate() error = %v, want *database.StorageError", err)
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("storage faults must stay distinct from invalid credentials")
	}

	if _, err := svc.CountUsers(); !errors.As(err, &se) {
		t.Errorf("CountUsers() error = %v, want *database.StorageError", err)
	}
}

func TestService_CountUsers(t *testing.T) {
	svc, _ := setupService(t)

	n, err := svc.CountUsers()
	if err != nil || n != 0 {
		t.Fatalf("CountUsers() = %d, %v; want 0, nil", n, err)
	}

	if _, err := svc.Register("Ivan", "Petrov", "ivan@example.com", "secret"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if n, _ := svc.CountUsers(); n != 1 {
		t.Errorf("CountUsers() = %d, want 1", n)
	}
}

func TestService_GetUserByID(t *testing.T) {
	svc, _ := setupService(t)

	id, err := svc.Register("Ivan", "Petrov", "ivan@example.com", "secret")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := svc.GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if user.Email != "ivan@example.com" {
		t.Errorf("user.Email = %q", user.Email)
	}

	if _, err := svc.GetUserByID(999); !errors.Is(err, users.ErrNotFound) {
		t.Errorf("GetUserByID(999) error = %v, want users.ErrNotFound", err)
	}
}
