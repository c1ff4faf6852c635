package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found for the tenant.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInUse indicates that a resource is referenced by dependent records and cannot be deleted.
var ErrInUse = errors.New("resource is in use")

// ErrUnauthorized indicates a missing, malformed or expired credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates a valid identity that lacks the required role.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP status code alongside a message and an optional cause.
// Handlers may return it directly when the generic sentinel mapping is not enough.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
