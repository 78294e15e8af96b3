// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors
var (
	// ErrIndexOutOfRange is returned by update when the positional index is
	// outside the record sequence. The journal is left unchanged when it
	// fires.
	ErrIndexOutOfRange = errors.New("trade index out of range")

	ErrConfigInvalid = errors.New("invalid configuration")
	ErrEmptyImport   = errors.New("import produced no records")
)

// ValidationError reports a single raw field that failed coercion.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%q): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ValidationErrors aggregates every field failure from one add or update so
// the whole operation can be rejected atomically with a single error value.
type ValidationErrors struct {
	Op     string
	Fields []*ValidationError
}

func (e *ValidationErrors) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("%s rejected: invalid numeric input for %s", e.Op, strings.Join(names, ", "))
}

// Add appends a field failure, ignoring nils so call sites stay flat.
func (e *ValidationErrors) Add(fe *ValidationError) {
	if fe != nil {
		e.Fields = append(e.Fields, fe)
	}
}

// Empty reports whether no field failed.
func (e *ValidationErrors) Empty() bool {
	return len(e.Fields) == 0
}

// IsValidation reports whether err is an aggregated validation failure.
func IsValidation(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}

// ImportError represents a structural failure parsing interchange text. The
// import is rejected as a whole and the caller's journal must be preserved.
type ImportError struct {
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(message string, err error) *ImportError {
	return &ImportError{
		Message: message,
		Err:     err,
	}
}

// IsImport reports whether err is a structural import failure.
func IsImport(err error) bool {
	var ie *ImportError
	return errors.As(err, &ie)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
