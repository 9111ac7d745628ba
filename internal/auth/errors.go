package auth

import (
	"errors"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrEmailTaken is returned by Register when the email is already registered.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidCredentials is returned by Authenticate when no user matches.
	// It is an expected outcome, not a storage fault.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError lists the required fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// requireFields returns a *ValidationError naming every empty value, or nil.
// Pairs are field name, value.
func requireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
