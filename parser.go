package clarg

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/Azhovan/clarg/internal/token"
)

// Parser parses token sequences against a Registry. It never modifies the
// registry and keeps no state between calls.
type Parser struct {
	reg    *Registry
	logger *slog.Logger
}

// ParserOption configures a Parser using the functional options pattern.
type ParserOption func(*Parser)

// WithLogger sets the logger used for debug tracing. Default: discard.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser for reg.
func NewParser(reg *Registry, opts ...ParserOption) *Parser {
	p := &Parser{
		reg:    reg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits tokens into positionals and argument values.
// Any error aborts the whole call; no partial result is returned.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	res := newResult()
	literal := false

	// Step 1: Consume tokens left to right
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !literal && tok == token.Separator {
			literal = true
			continue
		}
		if literal {
			res.Positionals = append(res.Positionals, tok)
			continue
		}

		flag, ok := token.SplitFlag(tok)
		if !ok {
			res.Positionals = append(res.Positionals, tok)
			continue
		}

		spec, err := p.resolve(flag.Key)
		if err != nil {
			return nil, err
		}

		// Step 2: Extract the raw values for this occurrence
		var raw []string
		if spec.Bool {
			switch {
			case flag.HasValue:
				raw = []string{flag.Value}
			case spec.Default.truthy():
				raw = []string{"0"}
			default:
				raw = []string{"1"}
			}
		} else {
			value := flag.Value
			if !flag.HasValue {
				if i+1 >= len(tokens) {
					return nil, &MissingValueError{Name: spec.Name}
				}
				i++
				value = tokens[i]
			}
			if spec.List {
				raw = token.SplitList(value)
			} else {
				raw = []string{value}
			}
		}

		// Step 3: Validate originals, then transform
		if err := runCheck(spec, raw); err != nil {
			return nil, err
		}
		values := transformValues(spec, raw)

		// Step 4: Store (lists accumulate, scalars replace)
		if spec.List {
			prev, _ := res.Values[spec.Name].([]any)
			res.Values[spec.Name] = append(prev, values...)
		} else {
			res.Values[spec.Name] = values[0]
		}
		res.recordFlag(spec.Name, tok, spec.List)

		p.logger.Debug("argument parsed", "token", tok, "name", spec.Name, "values", raw)
	}

	// Step 5: Fill defaults for arguments still absent
	for _, name := range p.reg.names {
		d, ok := p.reg.defaults[name]
		if !ok {
			continue
		}
		if _, set := res.Values[name]; set {
			continue
		}
		res.Values[name] = d.Value()
		res.recordDefault(name)
		p.logger.Debug("default applied", "name", name, "computed", d.IsComputed())
	}

	return res, nil
}

// resolve maps a flag key to its spec. An exact name or alias wins; otherwise
// the key must be a prefix of exactly one canonical name. Aliases take no
// part in prefix matching.
func (p *Parser) resolve(key string) (*ArgumentSpec, error) {
	if spec, ok := p.reg.lookup[key]; ok {
		return spec, nil
	}

	var candidates []string
	for _, name := range p.reg.names {
		if strings.HasPrefix(name, key) {
			candidates = append(candidates, name)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, &UnknownArgumentError{Key: key}
	case 1:
		p.logger.Debug("prefix resolved", "key", key, "name", candidates[0])
		return p.reg.lookup[candidates[0]], nil
	default:
		sort.Strings(candidates)
		return nil, &AmbiguousArgumentError{Key: key, Candidates: candidates}
	}
}

func transformValues(spec *ArgumentSpec, raw []string) []any {
	out := make([]any, len(raw))
	for i, v := range raw {
		if spec.Transform != nil {
			out[i] = spec.Transform(v)
		} else {
			out[i] = v
		}
	}
	return out
}
