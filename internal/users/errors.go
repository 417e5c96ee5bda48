package users

import (
	"errors"
	"fmt"
)

// UserError represents errors related to user operations
type UserError struct {
	Type    string
	UserID  int64
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("user error [%s] for user %d: %s (caused by: %v)", e.Type, e.UserID, e.Message, e.Cause)
	}
	return fmt.Sprintf("user error [%s] for user %d: %s", e.Type, e.UserID, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// User error types
const (
	UserErrorTypeNotFound       = "not_found"
	UserErrorTypeInvalidRequest = "invalid_request"
	UserErrorTypeStorageFailed  = "storage_failed"
)

// NewUserNotFoundError creates an error for when a user is not found
func NewUserNotFoundError(userID int64) *UserError {
	return &UserError{
		Type:    UserErrorTypeNotFound,
		UserID:  userID,
		Message: "user not found",
	}
}

// NewUserStorageError creates an error for storage failures on user operations
func NewUserStorageError(userID int64, cause error) *UserError {
	return &UserError{
		Type:    UserErrorTypeStorageFailed,
		UserID:  userID,
		Message: "user storage operation failed",
		Cause:   cause,
	}
}

// IsNotFound reports whether err is a user not-found error
func IsNotFound(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr) && userErr.Type == UserErrorTypeNotFound
}

// MappingError represents a structurally malformed wire representation.
// It is returned before any service call executes.
type MappingError struct {
	Field   string
	Message string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error for field '%s': %s", e.Field, e.Message)
}

// NewMappingError creates a new mapping error for the given field
func NewMappingError(field, message string) *MappingError {
	return &MappingError{
		Field:   field,
		Message: message,
	}
}
