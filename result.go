package clarg

import (
	"fmt"
)

// Result is the outcome of one Parse call.
type Result struct {
	// Positionals holds tokens not consumed as flags or flag values, in input order.
	Positionals []string

	// Values maps canonical names to parsed values. List arguments hold []any;
	// others hold a single value (a string unless transformed or defaulted).
	Values map[string]any

	provenance map[string]*ValueProvenance
}

func newResult() *Result {
	return &Result{
		Positionals: []string{},
		Values:      make(map[string]any),
		provenance:  make(map[string]*ValueProvenance),
	}
}

// Has reports whether the argument was supplied or defaulted.
func (r *Result) Has(name string) bool {
	_, ok := r.Values[name]
	return ok
}

// Get returns the raw value of an argument.
func (r *Result) Get(name string) (any, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// String returns the value formatted as a string, or "" if absent.
func (r *Result) String(name string) string {
	v, ok := r.Values[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// List returns the elements of a list value. A scalar value is returned as a
// one-element list; an absent argument yields nil. The returned slice is a copy.
func (r *Result) List(name string) []any {
	v, ok := r.Values[name]
	if !ok {
		return nil
	}
	if l, ok := v.([]any); ok {
		return append([]any(nil), l...)
	}
	return []any{v}
}

// Strings is like List with every element formatted as a string.
func (r *Result) Strings(name string) []string {
	list := r.List(name)
	if list == nil {
		return nil
	}
	out := make([]string, len(list))
	for i, v := range list {
		if s, ok := v.(string); ok {
			out[i] = s
		} else {
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

// Bool reports whether the argument is set to a true value.
// Absent, "", "0", false and numeric zero are false.
func (r *Result) Bool(name string) bool {
	return isTruthy(r.Values[name])
}
