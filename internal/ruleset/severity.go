package ruleset

import (
	"fmt"
	"strings"
)

// Severity is the strictness of a rule: 0 disables it, 1 reports a warning
// and 2 reports a blocking error.
type Severity int

const (
	Off Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) valid() bool {
	return s >= Off && s <= Error
}

// Applicability is the direction of a check. "never" negates the rule.
type Applicability string

const (
	Always Applicability = "always"
	Never  Applicability = "never"
)

// ParseApplicability accepts "always" and "never", case-insensitively.
func ParseApplicability(s string) (Applicability, error) {
	switch Applicability(strings.ToLower(strings.TrimSpace(s))) {
	case Always:
		return Always, nil
	case Never:
		return Never, nil
	default:
		return "", fmt.Errorf("unknown applicability %q", s)
	}
}
