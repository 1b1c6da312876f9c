package clarg

// Origin tells how an argument got its value.
type Origin string

const (
	OriginFlag    Origin = "flag"    // Supplied on the command line
	OriginDefault Origin = "default" // Filled from the declared default
)

// ValueProvenance describes where an argument's value came from.
type ValueProvenance struct {
	Name   string   // Canonical name
	Origin Origin   // flag or default
	Tokens []string // Flag tokens that supplied the value, in input order
}

// Source returns a short attribution such as "flag:--foo=1" or "default".
func (p ValueProvenance) Source() string {
	if p.Origin == OriginDefault || len(p.Tokens) == 0 {
		return string(p.Origin)
	}
	return string(p.Origin) + ":" + p.Tokens[len(p.Tokens)-1]
}

func (r *Result) recordFlag(name, tok string, appendTok bool) {
	prov, ok := r.provenance[name]
	if !ok || !appendTok {
		r.provenance[name] = &ValueProvenance{Name: name, Origin: OriginFlag, Tokens: []string{tok}}
		return
	}
	prov.Tokens = append(prov.Tokens, tok)
}

func (r *Result) recordDefault(name string) {
	r.provenance[name] = &ValueProvenance{Name: name, Origin: OriginDefault}
}

// Provenance returns provenance for an argument that has a value.
func (r *Result) Provenance(name string) (ValueProvenance, bool) {
	prov, ok := r.provenance[name]
	if !ok {
		return ValueProvenance{}, false
	}
	out := *prov
	out.Tokens = append([]string(nil), prov.Tokens...)
	return out, true
}
