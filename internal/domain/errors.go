package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrDataIntegrity marks a stored record that is itself invalid (e.g. an
	// unknown status). Resubmitting the request cannot fix it.
	ErrDataIntegrity = errors.New("data integrity error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError is returned when a requested status is not reachable from
// the current one. Allowed lists every legal next status so the operator can
// pick one.
type TransitionError struct {
	From    RestorationStatus
	To      RestorationStatus
	Allowed []RestorationStatus
}

func (e *TransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("cannot transition from %s to %s: %s is terminal", e.From, e.To, e.From)
	}
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = string(s)
	}
	return fmt.Sprintf("cannot transition from %s to %s (allowed: %s)", e.From, e.To, strings.Join(names, ", "))
}

func (e *TransitionError) Unwrap() error { return ErrValidation }

// PreconditionError is returned when a damage action is requested on an item
// whose current status is not the one the action requires.
type PreconditionError struct {
	Action   DamageAction
	Required RestorationStatus
	Actual   RestorationStatus
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s requires status %s, item is %s", e.Action, e.Required, e.Actual)
}

func (e *PreconditionError) Unwrap() error { return ErrValidation }

// NewDataIntegrityError reports a stored status outside the closed enum.
func NewDataIntegrityError(status RestorationStatus) error {
	return fmt.Errorf("stored status %q is not a known status: %w", status, ErrDataIntegrity)
}
