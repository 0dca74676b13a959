package services

import "errors"

var (
	// ErrNotFound means the id has no matching record.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound means no user matched the sign-in identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials means the password hash comparison failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError names the first field that failed input validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Please fill in the required field: " + e.Field
}
