package services

import "errors"

var (
	// ErrNotFound covers both "does not exist" and "exists but belongs to
	// another user"; the two are never distinguished to the caller.
	ErrNotFound = errors.New("resource does not exist")

	// ErrInvalidCredentials is the single generic login failure.
	ErrInvalidCredentials = errors.New("Username or Password invalid")
)

// ConflictError carries per-field conflict messages, e.g. when both the email
// and the username of a registration are already taken.
type ConflictError struct {
	Fields map[string]string
}

func (e *ConflictError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "conflict"
}

func NewConflictError(field, message string) *ConflictError {
	return &ConflictError{Fields: map[string]string{field: message}}
}
