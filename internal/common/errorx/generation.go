package errorx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory represents the failure classes a generation run can end with
type ErrorCategory string

const (
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryConstraint    ErrorCategory = "generation_constraint"
	CategoryIntegrity     ErrorCategory = "integrity_violation"
	CategoryIO            ErrorCategory = "io"
)

// Categorized is implemented by every error type of this package
type Categorized interface {
	error
	Category() ErrorCategory
}

// FieldError describes one rejected configuration option
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ConfigurationError is returned before any generation starts when the
// configuration contains bad ranges, counts or probabilities.
type ConfigurationError struct {
	Fields []FieldError
}

// NewConfigurationError creates a configuration error for a single field
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Fields: []FieldError{{Field: field, Message: fmt.Sprintf(format, args...)}}}
}

// Add appends a field error
func (e *ConfigurationError) Add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any field was rejected
func (e *ConfigurationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ConfigurationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

func (e *ConfigurationError) Category() ErrorCategory { return CategoryConfiguration }

// GenerationConstraintError is returned during a phase when the requested
// volume cannot be produced under the schema constraints.
type GenerationConstraintError struct {
	Entity     string
	Constraint string
	Message    string
}

// NewConstraintError creates a generation constraint error
func NewConstraintError(entity, constraint, format string, args ...any) *GenerationConstraintError {
	return &GenerationConstraintError{
		Entity:     entity,
		Constraint: constraint,
		Message:    fmt.Sprintf(format, args...),
	}
}

func (e *GenerationConstraintError) Error() string {
	return fmt.Sprintf("cannot generate %s (%s): %s", e.Entity, e.Constraint, e.Message)
}

func (e *GenerationConstraintError) Category() ErrorCategory { return CategoryConstraint }

// IntegrityViolationError identifies the row and constraint that failed the
// post-generation validation pass.
type IntegrityViolationError struct {
	Entity     string
	RowID      string
	Constraint string
	Detail     string
	// Remaining counts the further violations found in the same pass
	Remaining int
}

func (e *IntegrityViolationError) Error() string {
	msg := fmt.Sprintf("integrity violation in %s row %q: %s", e.Entity, e.RowID, e.Constraint)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Remaining > 0 {
		msg += fmt.Sprintf(" and %d more", e.Remaining)
	}
	return msg
}

func (e *IntegrityViolationError) Category() ErrorCategory { return CategoryIntegrity }

// IOError wraps a filesystem failure with the path it happened on
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError wraps err, returning nil when err is nil
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Category() ErrorCategory { return CategoryIO }

// CategoryOf returns the category of the first categorized error in the chain
func CategoryOf(err error) (ErrorCategory, bool) {
	var c Categorized
	if errors.As(err, &c) {
		return c.Category(), true
	}
	return "", false
}
