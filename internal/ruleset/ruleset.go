// Package ruleset holds the commit-message rule set: which conventional
// commit types are accepted and how the header is constrained. The value is
// read-only once loaded and safe to share.
package ruleset

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/samber/lo"
)

// Rule names understood by the linter.
const (
	RuleTypeEnum            = "type-enum"
	RuleTypeCase            = "type-case"
	RuleTypeEmpty           = "type-empty"
	RuleScopeEnum           = "scope-enum"
	RuleScopeCase           = "scope-case"
	RuleScopeEmpty          = "scope-empty"
	RuleSubjectCase         = "subject-case"
	RuleSubjectEmpty        = "subject-empty"
	RuleSubjectFullStop     = "subject-full-stop"
	RuleHeaderMaxLength     = "header-max-length"
	RuleHeaderTrim          = "header-trim"
	RuleBodyLeadingBlank    = "body-leading-blank"
	RuleBodyMaxLineLength   = "body-max-line-length"
	RuleFooterLeadingBlank  = "footer-leading-blank"
	RuleFooterMaxLineLength = "footer-max-line-length"
)

// Cases lists the case tokens accepted by the *-case rules. "lower" and
// "upper" are shorthands kept for hand-written configurations.
var Cases = []string{
	"lower-case", "lowercase", "lower",
	"upper-case", "uppercase", "upper",
	"camel-case",
	"kebab-case",
	"pascal-case",
	"sentence-case", "sentencecase",
	"snake-case",
	"start-case",
}

// RuleSet is the declarative configuration consumed by the linter.
type RuleSet struct {
	Extends []string              `json:"extends,omitempty" yaml:"extends,omitempty" toml:"extends,omitempty"`
	Rules   map[string]RuleConfig `json:"rules" yaml:"rules" toml:"rules"`

	// DefaultIgnores skips merge commits, automatic reverts and fixup!
	// commits. Nil means true.
	DefaultIgnores *bool `json:"defaultIgnores,omitempty" yaml:"defaultIgnores,omitempty" toml:"defaultIgnores,omitempty"`
	// Ignores are regular expressions matched against the header.
	Ignores []string `json:"ignores,omitempty" yaml:"ignores,omitempty" toml:"ignores,omitempty"`
	// HelpURL is shown next to the help line of a failing report.
	HelpURL string `json:"helpUrl,omitempty" yaml:"helpUrl,omitempty" toml:"helpUrl,omitempty"`
}

// Rule returns the configuration of a single rule.
func (rs RuleSet) Rule(name string) (RuleConfig, bool) {
	r, ok := rs.Rules[name]
	return r, ok
}

// Names returns the configured rule names in lexical order.
func (rs RuleSet) Names() []string {
	names := lo.Keys(rs.Rules)
	slices.Sort(names)
	return names
}

// UsesDefaultIgnores reports whether the built-in ignore patterns apply.
func (rs RuleSet) UsesDefaultIgnores() bool {
	return rs.DefaultIgnores == nil || *rs.DefaultIgnores
}

// Clone returns a deep copy so callers can override rules without touching
// the receiver.
func (rs RuleSet) Clone() RuleSet {
	out := RuleSet{
		Extends: slices.Clone(rs.Extends),
		Rules:   make(map[string]RuleConfig, len(rs.Rules)),
		Ignores: slices.Clone(rs.Ignores),
		HelpURL: rs.HelpURL,
	}
	if rs.DefaultIgnores != nil {
		v := *rs.DefaultIgnores
		out.DefaultIgnores = &v
	}
	for name, rule := range rs.Rules {
		if list, ok := rule.Value.([]string); ok {
			rule.Value = slices.Clone(list)
		}
		out.Rules[name] = rule
	}
	return out
}

// Raw returns the plain map/array form used by encoders that cannot see
// the RuleConfig marshalers.
func (rs RuleSet) Raw() map[string]any {
	rules := make(map[string]any, len(rs.Rules))
	for name, rule := range rs.Rules {
		rules[name] = rule.Raw()
	}
	out := map[string]any{"rules": rules}
	if len(rs.Extends) > 0 {
		out["extends"] = slices.Clone(rs.Extends)
	}
	if rs.DefaultIgnores != nil {
		out["defaultIgnores"] = *rs.DefaultIgnores
	}
	if len(rs.Ignores) > 0 {
		out["ignores"] = slices.Clone(rs.Ignores)
	}
	if rs.HelpURL != "" {
		out["helpUrl"] = rs.HelpURL
	}
	return out
}

// Validate checks the shape of every enabled rule. Rule names are checked by
// the linter, which owns the rule implementations.
func (rs RuleSet) Validate() error {
	for _, name := range rs.Names() {
		rule := rs.Rules[name]
		if !rule.Severity.valid() {
			return apperrors.ErrInvalidSeverity.WithContext("rule", name)
		}
		if !rule.Enabled() {
			continue
		}
		if rule.When != "" && rule.When != Always && rule.When != Never {
			return apperrors.ErrInvalidApplicability.WithContext("rule", name)
		}
		if err := validateValue(name, rule); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(name string, rule RuleConfig) error {
	invalid := func(format string, args ...any) error {
		return apperrors.ErrInvalidRuleValue.
			WithContext("rule", name).
			WithError(fmt.Errorf(format, args...))
	}

	switch name {
	case RuleTypeEnum:
		types, ok := rule.StringsValue()
		if !ok || len(types) == 0 {
			return apperrors.ErrEmptyTypeEnum.WithContext("rule", name)
		}
		if bad, found := lo.Find(types, func(t string) bool {
			return t == "" || t != strings.ToLower(t)
		}); found {
			return invalid("type %q must be a non-empty lower-case token", bad)
		}
	case RuleScopeEnum:
		if _, ok := rule.StringsValue(); !ok {
			return invalid("expected a list of scopes")
		}
	case RuleTypeCase, RuleScopeCase, RuleSubjectCase:
		cases, ok := rule.StringsValue()
		if !ok || len(cases) == 0 {
			return invalid("expected a case name or a list of case names")
		}
		if unknown := lo.Without(cases, Cases...); len(unknown) > 0 {
			return invalid("unknown case %q", unknown[0])
		}
	case RuleSubjectFullStop:
		if rule.Value == nil {
			return nil
		}
		if _, ok := rule.StringValue(); !ok {
			return invalid("expected a punctuation string")
		}
	case RuleHeaderMaxLength, RuleBodyMaxLineLength, RuleFooterMaxLineLength:
		n, ok := rule.IntValue()
		if !ok || n <= 0 {
			return invalid("expected a positive integer, got %v", rule.Value)
		}
	}
	return nil
}
