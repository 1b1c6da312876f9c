package clarg

import (
	"encoding/json"
	"reflect"
	"regexp"
)

// DefaultDescription is reported by Describe for arguments declared without one.
const DefaultDescription = "No Description"

// Properties declares the behavior of one argument.
type Properties struct {
	Aliases     []string         // Extra names resolving to this argument (exact match only)
	List        bool             // Comma-split values, accumulated across occurrences
	Bool        bool             // Takes no value; presence toggles it
	Default     *Default         // Used when the argument is not supplied
	Check       *Check           // Validator applied to every raw value
	Transform   func(string) any // Applied per value after the check passes
	Description string           // Help text
}

// ArgumentSpec is a registered argument.
type ArgumentSpec struct {
	Name        string
	Aliases     []string
	List        bool
	Bool        bool
	Default     *Default
	Check       *Check
	Transform   func(string) any
	Description string
}

// Default is either a literal value or a function computing one at parse time.
type Default struct {
	literal  any
	compute  func() any
	computed bool
}

// Literal returns a Default holding a scalar value.
func Literal(v any) *Default {
	return &Default{literal: v}
}

// Computed returns a Default whose value is produced by fn on every parse.
func Computed(fn func() any) *Default {
	return &Default{compute: fn, computed: true}
}

// IsComputed reports whether the default is produced by a function.
func (d *Default) IsComputed() bool {
	return d.computed
}

// Value returns the literal, or calls the producing function.
func (d *Default) Value() any {
	if d.computed {
		return d.compute()
	}
	return d.literal
}

// truthy reports whether the default counts as "on" for a boolean argument.
// A computed default always does; it is never invoked for this decision.
func (d *Default) truthy() bool {
	if d == nil {
		return false
	}
	if d.computed {
		return true
	}
	return isTruthy(d.literal)
}

// isTruthy treats nil, false, numeric zero, "" and "0" as false.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f != 0
		}
		return t != "" && t != "0"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		return s != "" && s != "0"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}

// CheckKind identifies the variant of a Check.
type CheckKind int

const (
	CheckPredicate CheckKind = iota + 1
	CheckPattern
	CheckNumber
	CheckFile
	CheckDir
)

// String returns the label used in validation errors.
func (k CheckKind) String() string {
	switch k {
	case CheckPredicate:
		return "predicate"
	case CheckPattern:
		return "pattern"
	case CheckNumber:
		return "number"
	case CheckFile:
		return "file"
	case CheckDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Check validates raw argument values.
type Check struct {
	kind      CheckKind
	predicate func(string) bool
	pattern   *regexp.Regexp
	builtin   string // name given to Builtin, kept for error messages
}

// Predicate returns a Check that accepts values for which fn returns true.
func Predicate(fn func(string) bool) *Check {
	return &Check{kind: CheckPredicate, predicate: fn}
}

// Pattern returns a Check that accepts values matching re.
func Pattern(re *regexp.Regexp) *Check {
	return &Check{kind: CheckPattern, pattern: re}
}

// MustPattern compiles expr and returns a pattern Check. It panics on a bad expression.
func MustPattern(expr string) *Check {
	return Pattern(regexp.MustCompile(expr))
}

// Builtin returns one of the predefined checks: "number", "file" or "dir".
// Unknown names are rejected when the argument is defined.
func Builtin(name string) *Check {
	c := &Check{builtin: name}
	switch name {
	case "number":
		c.kind = CheckNumber
	case "file":
		c.kind = CheckFile
	case "dir":
		c.kind = CheckDir
	}
	return c
}

// Kind returns the check variant. It is zero for an unknown builtin.
func (c *Check) Kind() CheckKind {
	return c.kind
}
