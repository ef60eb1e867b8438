package lint

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/matelint/internal/regex"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
)

// Message identifies a problem text in the message catalog, together with
// the values its template needs.
type Message struct {
	ID   string
	Data map[string]any
}

func message(id string, when ruleset.Applicability, data map[string]any) Message {
	if when == ruleset.Never {
		return Message{ID: "problems." + id + ".never", Data: data}
	}
	return Message{ID: "problems." + id + ".always", Data: data}
}

// Rule checks one aspect of a parsed commit. It returns whether the commit
// satisfies the rule and the message to report when it does not.
type Rule func(c Commit, when ruleset.Applicability, value any) (bool, Message)

var registry = map[string]Rule{
	ruleset.RuleTypeEnum:            typeEnum,
	ruleset.RuleTypeCase:            typeCase,
	ruleset.RuleTypeEmpty:           typeEmpty,
	ruleset.RuleScopeEnum:           scopeEnum,
	ruleset.RuleScopeCase:           scopeCase,
	ruleset.RuleScopeEmpty:          scopeEmpty,
	ruleset.RuleSubjectCase:         subjectCase,
	ruleset.RuleSubjectEmpty:        subjectEmpty,
	ruleset.RuleSubjectFullStop:     subjectFullStop,
	ruleset.RuleHeaderMaxLength:     headerMaxLength,
	ruleset.RuleHeaderTrim:          headerTrim,
	ruleset.RuleBodyLeadingBlank:    bodyLeadingBlank,
	ruleset.RuleBodyMaxLineLength:   bodyMaxLineLength,
	ruleset.RuleFooterLeadingBlank:  footerLeadingBlank,
	ruleset.RuleFooterMaxLineLength: footerMaxLineLength,
}

// Lookup returns the implementation of a rule.
func Lookup(name string) (Rule, bool) {
	r, ok := registry[name]
	return r, ok
}

// RuleNames lists every implemented rule, sorted.
func RuleNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func apply(when ruleset.Applicability, matches bool) bool {
	if when == ruleset.Never {
		return !matches
	}
	return matches
}

func stringList(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case string:
		return []string{v}
	default:
		return nil
	}
}

func caseNames(value any) []string {
	names := stringList(value)
	out := make([]string, len(names))
	for i, name := range names {
		switch name {
		case "lower":
			out[i] = "lower-case"
		case "upper":
			out[i] = "upper-case"
		default:
			out[i] = name
		}
	}
	return out
}

func typeEnum(c Commit, when ruleset.Applicability, value any) (bool, Message) {
	allowed := stringList(value)
	msg := message("type_enum", when, map[string]any{"Values": strings.Join(allowed, ", ")})
	if c.Type == "" {
		return true, msg
	}
	return apply(when, slices.Contains(allowed, c.Type)), msg
}

func typeCase(c Commit, when ruleset.Applicability, value any) (bool, Message) {
	return checkCase("type_case", []string{c.Type}, when, value)
}

func scopeCase(c Commit, when ruleset.Applicability, value any) (bool, Message) {
	return checkCase("scope_case", splitScope(c.Scope), when, value)
}

func subjectCase(c Commit, when ruleset.Applicability, value any) (bool, Message) {
	return checkCase("subject_case", []string{c.Subject}, when, value)
}

func checkCase(id string, inputs []string, when ruleset.Applicability, value any) (bool, Message) {
	targets := caseNames(value)
	msg := message(id, when, map[string]any{"Cases": strings.Join(targets, ", ")})
	for _, input := range inputs {
		if input == "" {
			continue
		}
		matches := slices.ContainsFunc(targets, func(target string) bool {
			return ensureCase(input, target)
		})
		if !apply(when, matches) {
			return false, msg
		}
	}
	return true, msg
}

func splitScope(scope string) []string {
	if scope == "" {
		return nil
	}
	parts := regex.ScopeDelimiters.Split(scope, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func scopeEnum(c Commit, when ruleset.Applicability, value any) (bool, Message) {
	allowed := stringList(value)
	msg := message("scope_enum", when, map[string]any{"Values": strings.Join(allowed, ", ")})
	if c.Scope == "" || len(allowed) == 0 {
		return true, msg
	}
	for _, scope := range splitScope(c.Scope) {
		if !apply(when, slices.Contains(allowed, scope)) {
			return false, msg
		}
	}
	return true, msg
}

func emptyCheck(id, input string, when ruleset.Applicability) (bool, Message) {
	empty := strings.TrimSpace(input) == ""
	return apply(when, empty), message(id, when, nil)
}

func typeEmpty(c Commit, when ruleset.Applicability, _ any) (bool, Message) {
	return emptyCheck("type_empty", c.Type, when)
}

func scopeEmpty(c Commit, when ruleset.Applicability, _ any) (bool, Message) {
	return emptyCheck("scope_empty", c.Scope, when)
}

func subjectEmpty(c Commit, when ruleset.Applicability, _ any) (bool, Message) {
	return emptyCheck("subject_empty", c.Subject, when)
}

func subjectFullStop(c Commit, when ruleset.Applicability, value any) (bool, Message) {
	stop, _ := value.(string)
	if stop == "" {
		stop = "."
	}
	msg := message("subject_full_stop", when, map[string]any{"Stop": stop})

	header := c.Header
	if idx := strings.Index(header, ":"); idx > 0 && idx == len(header)-1 {
		return true, msg
	}
	hasStop := strings.HasSuffix(header, stop)
	if stop == "." && strings.HasSuffix(header, "...") {
		hasStop = false
	}
	return apply(when, hasStop), msg
}

func headerMaxLength(c Commit, _ ruleset.Applicability, value any) (bool, Message) {
	limit, _ := value.(int)
	length := utf8.RuneCountInString(c.Header)
	return length <= limit, message("header_max_length", ruleset.Always, map[string]any{"Max": limit, "Length": length})
}

func headerTrim(c Commit, when ruleset.Applicability, _ any) (bool, Message) {
	trimmed := c.Header == strings.TrimSpace(c.Header)
	return apply(when, trimmed), message("header_trim", when, nil)
}

func bodyLeadingBlank(c Commit, when ruleset.Applicability, _ any) (bool, Message) {
	msg := message("body_leading_blank", when, nil)
	if c.Body == "" {
		return true, msg
	}
	return apply(when, c.blankBefore(c.bodyStart)), msg
}

func footerLeadingBlank(c Commit, when ruleset.Applicability, _ any) (bool, Message) {
	msg := message("footer_leading_blank", when, nil)
	if c.Footer == "" {
		return true, msg
	}
	return apply(when, c.blankBefore(c.footerStart)), msg
}

func bodyMaxLineLength(c Commit, _ ruleset.Applicability, value any) (bool, Message) {
	return maxLineLength("body_max_line_length", c.Body, value)
}

func footerMaxLineLength(c Commit, _ ruleset.Applicability, value any) (bool, Message) {
	return maxLineLength("footer_max_line_length", c.Footer, value)
}

func maxLineLength(id, text string, value any) (bool, Message) {
	limit, _ := value.(int)
	msg := message(id, ruleset.Always, map[string]any{"Max": limit})
	for _, line := range strings.Split(text, "\n") {
		if regex.URL.MatchString(line) {
			continue
		}
		if utf8.RuneCountInString(line) > limit {
			return false, msg
		}
	}
	return true, msg
}
