package token

import (
	"regexp"
	"strings"
)

// Separator ends flag parsing; every later token is positional.
const Separator = "--"

// flagPattern: one or more dashes, a name free of '-' and '=', then an
// optional "=value" whose remainder is taken verbatim.
var flagPattern = regexp.MustCompile(`(?s)^-+([^-=]+)(?:=(.*))?$`)

// Flag is a token recognised as a flag.
type Flag struct {
	Key      string // Name component, dashes stripped
	Value    string // Inline value after the first '='
	HasValue bool   // Whether "=value" was present (Value may be empty)
}

// SplitFlag recognises a flag token.
// Examples:
//   - "--foo=zoot" → {Key: "foo", Value: "zoot", HasValue: true}
//   - "-bar" → {Key: "bar"}
//   - "---x=a=b" → {Key: "x", Value: "a=b", HasValue: true}
//   - "-", "--", "--foo-bar", "plain" → not a flag
func SplitFlag(tok string) (Flag, bool) {
	m := flagPattern.FindStringSubmatchIndex(tok)
	if m == nil {
		return Flag{}, false
	}
	f := Flag{Key: tok[m[2]:m[3]]}
	if m[4] >= 0 {
		f.Value = tok[m[4]:m[5]]
		f.HasValue = true
	}
	return f, true
}

// SplitList splits a list value on commas and trims surrounding whitespace
// from each element. Empty elements are kept.
// Examples:
//   - "a, b ,c" → ["a", "b", "c"]
//   - "a,,b" → ["a", "", "b"]
//   - "" → [""]
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
