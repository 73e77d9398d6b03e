package errorvalues

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")

	ErrTaskNotFound    = fmt.Errorf("task %w", ErrNotFound)
	ErrSubtaskNotFound = fmt.Errorf("subtask %w", ErrNotFound)
	ErrNoteNotFound    = fmt.Errorf("note %w", ErrNotFound)
	ErrHabitNotFound   = fmt.Errorf("habit %w", ErrNotFound)
	ErrEntryNotFound   = fmt.Errorf("habit entry %w", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("time tracking session %w", ErrNotFound)

	ErrSessionStopped = errors.New("time tracking session already stopped")
	ErrEntryExists    = errors.New("habit entry for this date already exists")
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError lists every field of a request that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Rule))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule}}}
}

// StorageError is returned when the underlying store fails. Op names the
// repository operation; Err keeps the driver error for logs.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + " db error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
