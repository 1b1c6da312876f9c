package clarg

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for definition failures.
const (
	ErrCodeDuplicateName          = "duplicate_name"
	ErrCodeDuplicateAlias         = "duplicate_alias"
	ErrCodeInvalidProperty        = "invalid_property"
	ErrCodeIncompatibleProperties = "incompatible_properties"
	ErrCodeInvalidDefault         = "invalid_default"
	ErrCodeInvalidCheck           = "invalid_check"
)

// Error codes for binding failures.
const (
	ErrCodeInvalidType = "invalid_type"
	ErrCodeUnsupported = "unsupported"
)

// Sentinels matched by the parse error types via errors.Is.
var (
	ErrUnknownArgument   = errors.New("clarg: unknown argument")
	ErrAmbiguousArgument = errors.New("clarg: ambiguous argument")
	ErrMissingValue      = errors.New("clarg: missing value")
	ErrValidationFailed  = errors.New("clarg: validation failed")
)

// DefinitionError reports an argument that could not be defined.
type DefinitionError struct {
	Name    string // Argument being defined
	Code    string // Error code (e.g., "duplicate_name")
	Message string // Human-readable description
}

func (e *DefinitionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("define argument: %s (%s)", e.Code, e.Message)
	}
	return fmt.Sprintf("define argument %q: %s (%s)", e.Name, e.Code, e.Message)
}

func definitionError(name, code, format string, args ...any) *DefinitionError {
	return &DefinitionError{Name: name, Code: code, Message: fmt.Sprintf(format, args...)}
}

// UnknownArgumentError is returned when a flag matches no argument.
type UnknownArgumentError struct {
	Key string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument %q", e.Key)
}

func (e *UnknownArgumentError) Is(target error) bool {
	return target == ErrUnknownArgument
}

// AmbiguousArgumentError is returned when a flag is a prefix of several names.
type AmbiguousArgumentError struct {
	Key        string
	Candidates []string // Sorted canonical names
}

func (e *AmbiguousArgumentError) Error() string {
	return fmt.Sprintf("ambiguous argument %q could be: %s", e.Key, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousArgumentError) Is(target error) bool {
	return target == ErrAmbiguousArgument
}

// MissingValueError is returned when a valued flag ends the token list.
type MissingValueError struct {
	Name string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argument %q requires a value", e.Name)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// ValidationError lists every value of an argument that failed its check.
type ValidationError struct {
	Name   string
	Check  CheckKind
	Values []string // Failing values in input order
}

func (e *ValidationError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("argument %q failed %s check: %s", e.Name, e.Check, strings.Join(quoted, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// BindError aggregates field-level binding failures.
type BindError struct {
	FieldErrors []FieldError
}

// Error formats binding errors as a multi-line message.
func (e *BindError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "bind failed: no errors"
	}

	var b strings.Builder
	if len(e.FieldErrors) == 1 {
		b.WriteString("bind failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "bind failed: %d errors\n", len(e.FieldErrors))
	}

	for _, fe := range e.FieldErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", fe.FieldPath, fe.Code, fe.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FieldError represents a single field binding failure.
type FieldError struct {
	FieldPath string // Struct field name (e.g., "Port")
	Code      string // Error code (e.g., "invalid_type")
	Message   string // Human-readable description
}
