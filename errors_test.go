package clarg

import (
	"errors"
	"strings"
	"testing"
)

func TestDefinitionError_Error(t *testing.T) {
	e := &DefinitionError{Name: "foo", Code: ErrCodeDuplicateName, Message: "name already registered as a name"}

	got := e.Error()
	want := `define argument "foo": duplicate_name (name already registered as a name)`
	if got != want {
		t.Errorf("DefinitionError.Error()\ngot:  %q\nwant: %q", got, want)
	}
}

func TestDefinitionError_Error_NoName(t *testing.T) {
	e := &DefinitionError{Code: ErrCodeInvalidProperty, Message: "unknown property colour"}

	got := e.Error()
	want := "define argument: invalid_property (unknown property colour)"
	if got != want {
		t.Errorf("DefinitionError.Error()\ngot:  %q\nwant: %q", got, want)
	}
}

func TestParseErrors_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unknown",
			err:  &UnknownArgumentError{Key: "x"},
			want: `unknown argument "x"`,
		},
		{
			name: "ambiguous",
			err:  &AmbiguousArgumentError{Key: "b", Candidates: []string{"bar", "baz"}},
			want: `ambiguous argument "b" could be: bar, baz`,
		},
		{
			name: "missing value",
			err:  &MissingValueError{Name: "out"},
			want: `argument "out" requires a value`,
		},
		{
			name: "validation",
			err:  &ValidationError{Name: "code", Check: CheckPredicate, Values: []string{"tub", "x y"}},
			want: `argument "code" failed predicate check: "tub", "x y"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error()\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestParseErrors_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"unknown", &UnknownArgumentError{Key: "x"}, ErrUnknownArgument},
		{"ambiguous", &AmbiguousArgumentError{Key: "b"}, ErrAmbiguousArgument},
		{"missing value", &MissingValueError{Name: "n"}, ErrMissingValue},
		{"validation", &ValidationError{Name: "n"}, ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%T, %v) = false", tt.err, tt.sentinel)
			}
			if errors.Is(tt.err, errors.New("other")) {
				t.Errorf("errors.Is matched an unrelated error")
			}
		})
	}
}

func TestBindError_Error_MultipleErrors(t *testing.T) {
	be := &BindError{
		FieldErrors: []FieldError{
			{FieldPath: "Port", Code: ErrCodeInvalidType, Message: `argument "port": invalid integer "x"`},
			{FieldPath: "Ch", Code: ErrCodeUnsupported, Message: `argument "ch": unsupported field type`},
		},
	}

	got := be.Error()
	if !strings.HasPrefix(got, "bind failed: 2 errors\n") {
		t.Errorf("BindError.Error() header incorrect\ngot: %q", got)
	}
	for _, expected := range []string{
		`  - Port: invalid_type (argument "port": invalid integer "x")`,
		`  - Ch: unsupported (argument "ch": unsupported field type)`,
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("BindError.Error() missing %q\ngot: %q", expected, got)
		}
	}
}

func TestBindError_Error_SingleAndNone(t *testing.T) {
	single := &BindError{FieldErrors: []FieldError{{FieldPath: "A", Code: ErrCodeInvalidType, Message: "bad"}}}
	if got, want := single.Error(), "bind failed: 1 error\n  - A: invalid_type (bad)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	none := &BindError{}
	if got, want := none.Error(), "bind failed: no errors"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
