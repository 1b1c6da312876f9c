package clarg

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	withSources bool   // Include provenance for each value
	asJSON      bool   // Output as JSON instead of text format
	asYAML      bool   // Output as YAML instead of text format
	indent      string // Indentation for JSON output (default: "  ")
}

// WithSources includes the source of each value in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs the result as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// AsYAML outputs the result as YAML instead of text format.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asYAML = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// dumpDocument is the structured form written by the JSON and YAML dumps.
type dumpDocument struct {
	Values      map[string]any    `json:"values" yaml:"values"`
	Positionals []string          `json:"positionals" yaml:"positionals"`
	Sources     map[string]string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Dump writes a human-readable representation of a parse result.
// Values are listed by name in sorted order, followed by the positionals.
func Dump(w io.Writer, res *Result, opts ...DumpOption) error {
	if res == nil {
		return fmt.Errorf("result is nil")
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch {
	case config.asJSON:
		return dumpAsJSON(w, res, config)
	case config.asYAML:
		return dumpAsYAML(w, res, config)
	default:
		return dumpAsText(w, res, config)
	}
}

// dumpAsText outputs the result in text format (name: value).
func dumpAsText(w io.Writer, res *Result, config dumpConfig) error {
	for _, name := range sortedNames(res) {
		line := fmt.Sprintf("%s: %s", name, formatValue(res.Values[name]))
		if config.withSources {
			if prov, ok := res.Provenance(name); ok {
				line += fmt.Sprintf(" (source: %s)", prov.Source())
			}
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	line := fmt.Sprintf("positionals: [%s]\n", strings.Join(res.Positionals, ", "))
	if _, err := io.WriteString(w, line); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// dumpAsJSON outputs the result as a JSON document.
func dumpAsJSON(w io.Writer, res *Result, config dumpConfig) error {
	doc := buildDocument(res, config)

	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(doc, "", config.indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// dumpAsYAML outputs the result as a YAML document.
func dumpAsYAML(w io.Writer, res *Result, config dumpConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(res, config)); err != nil {
		return fmt.Errorf("yaml marshal error: %w", err)
	}
	return enc.Close()
}

func buildDocument(res *Result, config dumpConfig) dumpDocument {
	doc := dumpDocument{
		Values:      make(map[string]any, len(res.Values)),
		Positionals: append([]string{}, res.Positionals...),
	}
	for name, v := range res.Values {
		doc.Values[name] = v
	}
	if config.withSources {
		doc.Sources = make(map[string]string, len(res.Values))
		for name := range res.Values {
			if prov, ok := res.Provenance(name); ok {
				doc.Sources[name] = prov.Source()
			}
		}
	}
	return doc
}

func sortedNames(res *Result) []string {
	names := make([]string, 0, len(res.Values))
	for name := range res.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatValue formats a value for text output.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", t)
	case []any:
		elems := make([]string, len(t))
		for i, e := range t {
			elems[i] = fmt.Sprint(e)
		}
		return fmt.Sprintf("[%s]", strings.Join(elems, ", "))
	default:
		return fmt.Sprintf("%v", t)
	}
}
