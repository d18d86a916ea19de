package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("apigen: missing configuration")
	// ErrInvalidSchema indicates a schema model error.
	ErrInvalidSchema = errors.New("apigen: invalid schema")
	// ErrUnknownTarget indicates that no generator is registered for the
	// requested target identifier.
	ErrUnknownTarget = errors.New("apigen: unknown target")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("apigen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("apigen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// SchemaError represents a schema model error.
type SchemaError struct {
	Table   string
	Column  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("apigen: schema error")
	if e.Table != "" {
		b.WriteString(" on table ")
		b.WriteString(e.Table)
	}
	if e.Column != "" {
		b.WriteString(" column ")
		b.WriteString(e.Column)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(table, column, message string, cause error) *SchemaError {
	return &SchemaError{Table: table, Column: column, Message: message, Cause: cause}
}

// DiagKind classifies a diagnostic emitted during resolution or mapping.
type DiagKind uint8

// Diagnostic kinds. Each corresponds to a condition generation degrades
// on instead of failing; all of them are reported next to the file map.
const (
	// DiagDanglingForeignKey marks a foreign key referencing a table that
	// does not exist in the schema. The relation is skipped.
	DiagDanglingForeignKey DiagKind = iota + 1
	// DiagUnmatchedJunction marks a junction table whose foreign keys do
	// not yield a resolvable many-to-many relation.
	DiagUnmatchedJunction
	// DiagUnmappedType marks a source type absent from the target's
	// mapping table. The fallback type is emitted in its place.
	DiagUnmappedType
	// DiagPathCollision marks two generators writing to the same path.
	// The later file wins.
	DiagPathCollision
)

// String returns a short name for the diagnostic kind.
func (k DiagKind) String() string {
	switch k {
	case DiagDanglingForeignKey:
		return "dangling-foreign-key"
	case DiagUnmatchedJunction:
		return "unmatched-junction"
	case DiagUnmappedType:
		return "unmapped-type"
	case DiagPathCollision:
		return "path-collision"
	default:
		return "unknown"
	}
}

// Diagnostic describes one degraded condition encountered during a run.
// Diagnostics never abort generation; they accompany the file map so
// callers can surface under-generated output.
type Diagnostic struct {
	Kind   DiagKind
	Table  string
	Column string
	Detail string
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Kind.String())
	if d.Table != "" {
		b.WriteString(" table=")
		b.WriteString(d.Table)
	}
	if d.Column != "" {
		b.WriteString(" column=")
		b.WriteString(d.Column)
	}
	if d.Detail != "" {
		b.WriteString(": ")
		b.WriteString(d.Detail)
	}
	return b.String()
}
