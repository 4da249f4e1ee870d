package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by every layer. The REST layer maps them to status
// codes, so wrap with %w rather than replacing them.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// FieldError names a rejected input field by its JSON name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries every rejected field of one request. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// Violations collects field errors while an input is checked.
// The zero value is ready to use.
type Violations struct {
	fields []FieldError
}

// Add records a rejected field.
func (v *Violations) Add(field, message string) {
	v.fields = append(v.fields, FieldError{Field: field, Message: message})
}

// Empty reports whether nothing has been recorded.
func (v *Violations) Empty() bool { return len(v.fields) == 0 }

// Err returns a *ValidationError with the recorded fields in order, or nil
// when there are none.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Errors: v.fields}
}
