package schemafile

import (
	"testing"

	"github.com/Azhovan/clarg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestLoad_HCL(t *testing.T) {
	path := writeSchema(t, "args.hcl", `
argument "format" {
  alias       = ["f"]
  default     = "text"
  check       = "/^(text|json)$/"
  description = "Output format"
}

argument "retries" {
  default = 3
}

argument "ratio" {
  default = 0.5
}

argument "color" {
  bool    = true
  default = true
}

argument "include" {
  list = true
}
`)

	reg, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"format", "retries", "ratio", "color", "include"}, reg.Names())
	assert.Equal(t, "Output format", reg.Describe()["format"])

	res, err := reg.Parse([]string{"-color", "-i", "a,b", "--include=c"})
	require.NoError(t, err)
	assert.Equal(t, "text", res.Values["format"])
	assert.Equal(t, int64(3), res.Values["retries"])
	assert.Equal(t, 0.5, res.Values["ratio"])
	assert.False(t, res.Bool("color"))
	assert.Equal(t, []string{"a", "b", "c"}, res.Strings("include"))

	_, err = reg.Parse([]string{"-f", "xml"})
	assert.ErrorIs(t, err, clarg.ErrValidationFailed)
}

func TestDecodeHCL_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode string
	}{
		{
			name:     "unknown attribute",
			data:     "argument \"a\" {\n  colour = \"red\"\n}\n",
			wantCode: clarg.ErrCodeInvalidProperty,
		},
		{
			name:     "unknown block",
			data:     "option \"a\" {}\n",
			wantCode: clarg.ErrCodeInvalidProperty,
		},
		{
			name:     "composite default",
			data:     "argument \"a\" {\n  default = [1, 2]\n}\n",
			wantCode: clarg.ErrCodeInvalidDefault,
		},
		{
			name:     "duplicate name",
			data:     "argument \"a\" {}\nargument \"a\" {}\n",
			wantCode: clarg.ErrCodeDuplicateName,
		},
		{
			name:     "bool with list",
			data:     "argument \"a\" {\n  bool = true\n  list = true\n}\n",
			wantCode: clarg.ErrCodeIncompatibleProperties,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), "hcl")
			requireDefinitionCode(t, err, tt.wantCode)
		})
	}
}

func TestDecodeHCL_SyntaxError(t *testing.T) {
	_, err := Decode([]byte("argument \"a\" {"), "hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse HCL")
}

func TestDecodeHCL_NullDefault(t *testing.T) {
	reg, err := Decode([]byte("argument \"a\" {\n  default = null\n}\n"), "hcl")
	require.NoError(t, err)

	spec, ok := reg.Lookup("a")
	require.True(t, ok)
	assert.Nil(t, spec.Default)
}

func TestCtyScalar(t *testing.T) {
	tests := []struct {
		name    string
		value   cty.Value
		want    any
		wantErr bool
	}{
		{"string", cty.StringVal("x"), "x", false},
		{"bool", cty.True, true, false},
		{"whole number", cty.NumberIntVal(42), int64(42), false},
		{"fraction", cty.NumberFloatVal(1.25), 1.25, false},
		{"unknown", cty.UnknownVal(cty.String), nil, true},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("a")}), nil, true},
		{"object", cty.ObjectVal(map[string]cty.Value{"k": cty.True}), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctyScalar(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
