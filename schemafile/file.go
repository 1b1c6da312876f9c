package schemafile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Azhovan/clarg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures schema file loading.
type Options struct {
	// Format: "yaml", "json", "toml" or "hcl". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false (returns an empty registry).
	Required bool
}

// declaration is one argument as written in a YAML, JSON or TOML file.
// Keys outside this set are rejected by the decoders.
type declaration struct {
	Name        string   `yaml:"name" json:"name" toml:"name"`
	Alias       []string `yaml:"alias" json:"alias" toml:"alias"`
	List        bool     `yaml:"list" json:"list" toml:"list"`
	Bool        bool     `yaml:"bool" json:"bool" toml:"bool"`
	Default     any      `yaml:"default" json:"default" toml:"default"`
	Check       string   `yaml:"check" json:"check" toml:"check"`
	Description string   `yaml:"description" json:"description" toml:"description"`
}

type document struct {
	Arguments []declaration `yaml:"arguments" json:"arguments" toml:"arguments"`
}

// Load reads a schema file and returns a registry with its arguments defined.
func Load(path string, opts Options) (*clarg.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if opts.Required {
				return nil, fmt.Errorf("required schema file not found: %s: %w", path, err)
			}
			return clarg.NewRegistry(), nil
		}
		return nil, fmt.Errorf("read schema file %s: %w", path, err)
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	reg, err := decode(data, format, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return reg, nil
}

// Decode parses schema data in the given format.
func Decode(data []byte, format string) (*clarg.Registry, error) {
	return decode(data, format, "schema."+format)
}

func decode(data []byte, format, filename string) (*clarg.Registry, error) {
	var doc document
	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, classifyDecodeError("YAML", err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, classifyDecodeError("JSON", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, classifyDecodeError("TOML", err)
		}
	case "hcl":
		return decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("unsupported schema format: %s (supported: yaml, json, toml, hcl)", format)
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

func (d declaration) properties() (clarg.Properties, error) {
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
	if d.Default != nil {
		props.Default = clarg.Literal(jsonScalar(d.Default))
	}
	return props, nil
}

// jsonScalar turns a json.Number default into int64 or float64 so JSON
// schemas yield the same default types as YAML and TOML.
func jsonScalar(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return v
}

// parseCheck maps a check string to a Check: "/expr/" is a pattern,
// anything else names a builtin.
func parseCheck(name, s string) (*clarg.Check, error) {
	switch {
	case s == "":
		return nil, nil
	case len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/"):
		re, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return nil, &clarg.DefinitionError{
				Name:    name,
				Code:    clarg.ErrCodeInvalidCheck,
				Message: fmt.Sprintf("invalid pattern %s: %v", s, err),
			}
		}
		return clarg.Pattern(re), nil
	default:
		return clarg.Builtin(s), nil
	}
}

var unknownFieldPattern = regexp.MustCompile(`field (\S+) not found in type|unknown field "([^"]+)"`)

// classifyDecodeError turns strict-mode unknown key failures into
// InvalidProperty definition errors and wraps everything else.
func classifyDecodeError(kind string, err error) error {
	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		keys := make([]string, 0, len(strict.Errors))
		for _, e := range strict.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		return &clarg.DefinitionError{
			Code:    clarg.ErrCodeInvalidProperty,
			Message: "unknown property " + strings.Join(keys, ", "),
		}
	}

	if m := unknownFieldPattern.FindStringSubmatch(err.Error()); m != nil {
		key := m[1]
		if key == "" {
			key = m[2]
		}
		return &clarg.DefinitionError{
			Code:    clarg.ErrCodeInvalidProperty,
			Message: "unknown property " + key,
		}
	}

	return fmt.Errorf("parse %s: %w", kind, err)
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	case ".hcl":
		return "hcl"
	default:
		return ""
	}
}
