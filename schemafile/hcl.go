package schemafile

import (
	"fmt"
	"strings"

	"github.com/Azhovan/clarg"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclDocument is the top-level structure of an HCL schema file.
type hclDocument struct {
	Arguments []*hclDeclaration `hcl:"argument,block"`
}

// hclDeclaration represents an `argument "name" { ... }` block.
type hclDeclaration struct {
	Name        string     `hcl:"name,label"`
	Alias       []string   `hcl:"alias,optional"`
	List        bool       `hcl:"list,optional"`
	Bool        bool       `hcl:"bool,optional"`
	Default     *cty.Value `hcl:"default,optional"`
	Check       string     `hcl:"check,optional"`
	Description string     `hcl:"description,optional"`
}

// Summaries gohcl reports for attributes or blocks outside the schema.
var unsupportedSummaries = map[string]bool{
	"Unsupported argument":   true,
	"Unsupported block type": true,
}

func decodeHCL(data []byte, filename string) (*clarg.Registry, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL: %w", diags)
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, classifyDiagnostics(diags)
	}

	reg := clarg.NewRegistry()
	for _, decl := range doc.Arguments {
		props, err := decl.properties()
		if err != nil {
			return nil, err
		}
		if err := reg.Define(decl.Name, props); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (d *hclDeclaration) properties() (clarg.Properties, error) {
	check, err := parseCheck(d.Name, d.Check)
	if err != nil {
		return clarg.Properties{}, err
	}

	props := clarg.Properties{
		Aliases:     d.Alias,
		List:        d.List,
		Bool:        d.Bool,
		Check:       check,
		Description: d.Description,
	}

	if d.Default != nil && !d.Default.IsNull() {
		v, err := ctyScalar(*d.Default)
		if err != nil {
			return clarg.Properties{}, &clarg.DefinitionError{
				Name:    d.Name,
				Code:    clarg.ErrCodeInvalidDefault,
				Message: err.Error(),
			}
		}
		props.Default = clarg.Literal(v)
	}
	return props, nil
}

// ctyScalar converts a string, number or bool cty value to its Go form.
// Whole numbers become int64, others float64.
func ctyScalar(v cty.Value) (any, error) {
	if !v.IsKnown() {
		return nil, fmt.Errorf("default must be a known value")
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return v.AsString(), nil
	case ty.Equals(cty.Bool):
		return v.True(), nil
	case ty.Equals(cty.Number):
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("default number out of range: %w", err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("default must be a scalar, got %s", ty.FriendlyName())
	}
}

// classifyDiagnostics reports schema violations as InvalidProperty and other
// diagnostics as a plain decode error.
func classifyDiagnostics(diags hcl.Diagnostics) error {
	var unknown []string
	for _, d := range diags {
		if d.Severity == hcl.DiagError && unsupportedSummaries[d.Summary] {
			unknown = append(unknown, d.Detail)
		}
	}
	if len(unknown) > 0 {
		return &clarg.DefinitionError{
			Code:    clarg.ErrCodeInvalidProperty,
			Message: strings.Join(unknown, "; "),
		}
	}
	return fmt.Errorf("decode HCL: %w", diags)
}
