package clarg

import (
	"os"
)

// runCheck applies an argument's check to every value and returns a
// *ValidationError listing all failing values in input order, or nil.
func runCheck(spec *ArgumentSpec, values []string) error {
	if spec.Check == nil {
		return nil
	}

	var failed []string
	for _, v := range values {
		if !spec.Check.accepts(v) {
			failed = append(failed, v)
		}
	}

	if len(failed) > 0 {
		return &ValidationError{
			Name:   spec.Name,
			Check:  spec.Check.kind,
			Values: failed,
		}
	}
	return nil
}

// accepts reports whether a single raw value passes the check.
func (c *Check) accepts(v string) bool {
	switch c.kind {
	case CheckPredicate:
		return c.predicate(v)
	case CheckPattern:
		return c.pattern.MatchString(v)
	case CheckNumber:
		return isDigits(v)
	case CheckFile:
		info, err := os.Stat(v)
		return err == nil && info.Mode().IsRegular()
	case CheckDir:
		info, err := os.Stat(v)
		return err == nil && info.IsDir()
	default:
		return false
	}
}

// isDigits reports whether s has no non-digit character. The empty string passes.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
