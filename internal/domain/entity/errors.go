package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that request input was missing or malformed
	ErrValidationFailed = errors.New("validation failed")

	// ErrBackendUnavailable indicates that the database could not be reached
	// or did not answer in time
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrConstraintViolation indicates that the database rejected a write
	// because of an integrity constraint (foreign key, unique, not null, check)
	ErrConstraintViolation = errors.New("constraint violation")
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindBackendUnavailable
	KindConstraintViolation
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindBackendUnavailable:
		return "backend_unavailable"
	case KindConstraintViolation:
		return "constraint_violation"
	default:
		return "internal"
	}
}

// KindOf walks the error chain and reports the first recognised kind.
// Errors that carry none of the domain sentinels are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValidationFailed):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConstraintViolation):
		return KindConstraintViolation
	case errors.Is(err, ErrBackendUnavailable):
		return KindBackendUnavailable
	default:
		return KindInternal
	}
}

// ValidationError represents a validation error with detailed field information.
// It matches ErrValidationFailed under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Is reports ErrValidationFailed as a match so KindOf can classify it.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ConstraintError describes a write the database refused.
// Constraint holds the database constraint name when the driver reports one.
type ConstraintError struct {
	Constraint string
	Detail     string
	Err        error
}

func (e *ConstraintError) Error() string {
	msg := "constraint violation"
	if e.Constraint != "" {
		msg += " (" + e.Constraint + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// NotFoundError names the missing resource. It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
