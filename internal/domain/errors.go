package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict with current state")
	ErrDatabase           = errors.New("database access error")
)

// NotFoundError is the typed "resource not found" signal; it matches ErrNotFound.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

// NewNotFound builds a NotFoundError.
func NewNotFound(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s=%v not found", e.Resource, e.Field, e.Value)
}

// Is lets errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DatabaseError wraps a failed stored-procedure or connection call.
type DatabaseError struct {
	Op  string
	Err error
}

// NewDatabaseError builds a DatabaseError for the given operation.
func NewDatabaseError(op string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Err: err}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDatabase) succeed.
func (e *DatabaseError) Is(target error) bool { return target == ErrDatabase }

// ValidationError carries a human readable reason; it matches ErrInvalidInput.
type ValidationError struct {
	Message string
}

// NewValidation builds a ValidationError.
func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrInvalidInput) succeed.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
