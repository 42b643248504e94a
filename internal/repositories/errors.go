package repositories

import (
	"errors"
	"strings"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNoSession          = errors.New("not logged in")
)

// ValidationError lists the rules a piece of input broke, in check order.
type ValidationError struct {
	Problems []string
}

func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// First returns the first violated rule.
func (e *ValidationError) First() string {
	if len(e.Problems) == 0 {
		return ""
	}
	return e.Problems[0]
}
