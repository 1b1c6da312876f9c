package clarg

import (
	"reflect"
)

// Registry holds argument specifications keyed by canonical name and alias.
//
// Define is not safe for concurrent use; build the registry once and then
// share it. Parsing only reads the registry, so concurrent Parse calls against
// a registry that is no longer being defined are safe.
type Registry struct {
	lookup   map[string]*ArgumentSpec // name or alias -> spec
	names    []string                 // canonical names in registration order
	defaults map[string]*Default      // canonical name -> default
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		lookup:   make(map[string]*ArgumentSpec),
		names:    make([]string, 0),
		defaults: make(map[string]*Default),
	}
}

// Define registers an argument. It returns a *DefinitionError and leaves the
// registry untouched if the name, an alias, or the properties are invalid.
func (r *Registry) Define(name string, props Properties) error {
	if name == "" {
		return definitionError(name, ErrCodeInvalidProperty, "name cannot be empty")
	}
	if _, exists := r.lookup[name]; exists {
		return definitionError(name, ErrCodeDuplicateName, "name already registered as %s", r.describeOwner(name))
	}

	if props.Bool {
		if props.Check != nil {
			return definitionError(name, ErrCodeIncompatibleProperties, "bool cannot be combined with check")
		}
		if props.Transform != nil {
			return definitionError(name, ErrCodeIncompatibleProperties, "bool cannot be combined with transform")
		}
		if props.List {
			return definitionError(name, ErrCodeIncompatibleProperties, "bool cannot be combined with list")
		}
	}

	if err := validateDefault(name, props.Default); err != nil {
		return err
	}
	if err := validateCheck(name, props.Check); err != nil {
		return err
	}

	seen := map[string]bool{name: true}
	for _, alias := range props.Aliases {
		if alias == "" {
			return definitionError(name, ErrCodeInvalidProperty, "alias cannot be empty")
		}
		if _, exists := r.lookup[alias]; exists || seen[alias] {
			return definitionError(name, ErrCodeDuplicateAlias, "alias %q already registered", alias)
		}
		seen[alias] = true
	}

	spec := &ArgumentSpec{
		Name:        name,
		Aliases:     append([]string(nil), props.Aliases...),
		List:        props.List,
		Bool:        props.Bool,
		Default:     props.Default,
		Check:       props.Check,
		Transform:   props.Transform,
		Description: props.Description,
	}

	r.lookup[name] = spec
	for _, alias := range spec.Aliases {
		r.lookup[alias] = spec
	}
	r.names = append(r.names, name)
	if spec.Default != nil {
		r.defaults[name] = spec.Default
	}

	return nil
}

// MustDefine is like Define but panics on error.
func (r *Registry) MustDefine(name string, props Properties) {
	if err := r.Define(name, props); err != nil {
		panic(err)
	}
}

// Lookup returns the spec registered under an exact name or alias.
func (r *Registry) Lookup(nameOrAlias string) (*ArgumentSpec, bool) {
	spec, ok := r.lookup[nameOrAlias]
	return spec, ok
}

// Names returns the canonical names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Describe maps every canonical name to its description.
func (r *Registry) Describe() map[string]string {
	out := make(map[string]string, len(r.names))
	for _, name := range r.names {
		desc := r.lookup[name].Description
		if desc == "" {
			desc = DefaultDescription
		}
		out[name] = desc
	}
	return out
}

// Parse parses tokens with a default Parser.
func (r *Registry) Parse(tokens []string) (*Result, error) {
	return NewParser(r).Parse(tokens)
}

func (r *Registry) describeOwner(key string) string {
	spec := r.lookup[key]
	if spec.Name == key {
		return "a name"
	}
	return "an alias of " + spec.Name
}

func validateDefault(name string, d *Default) error {
	if d == nil {
		return nil
	}
	if d.computed {
		if d.compute == nil {
			return definitionError(name, ErrCodeInvalidDefault, "computed default has a nil function")
		}
		return nil
	}
	if d.literal == nil {
		return nil
	}
	switch reflect.ValueOf(d.literal).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Pointer,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return definitionError(name, ErrCodeInvalidDefault,
			"default must be a scalar or a Computed function, got %T", d.literal)
	}
	return nil
}

func validateCheck(name string, c *Check) error {
	if c == nil {
		return nil
	}
	switch c.kind {
	case CheckPredicate:
		if c.predicate == nil {
			return definitionError(name, ErrCodeInvalidCheck, "predicate function is nil")
		}
	case CheckPattern:
		if c.pattern == nil {
			return definitionError(name, ErrCodeInvalidCheck, "pattern is nil")
		}
	case CheckNumber, CheckFile, CheckDir:
	default:
		return definitionError(name, ErrCodeInvalidCheck,
			"unknown builtin check %q (supported: number, file, dir)", c.builtin)
	}
	return nil
}
