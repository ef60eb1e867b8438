package ruleset

import (
	"slices"
	"strings"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
)

// presets maps a preset identifier to its rules. Values mirror the
// conventional-commit preset that the default rule set extends.
var presets = map[string]func() RuleSet{
	ConventionalPreset: func() RuleSet {
		return RuleSet{
			Rules: map[string]RuleConfig{
				RuleBodyLeadingBlank:    NewRule(Warning, Always, nil),
				RuleBodyMaxLineLength:   NewRule(Error, Always, 100),
				RuleFooterLeadingBlank:  NewRule(Warning, Always, nil),
				RuleFooterMaxLineLength: NewRule(Error, Always, 100),
				RuleHeaderMaxLength:     NewRule(Error, Always, 100),
				RuleHeaderTrim:          NewRule(Error, Always, nil),
				RuleSubjectCase: NewRule(Error, Never, []string{
					"sentence-case", "start-case", "pascal-case", "upper-case",
				}),
				RuleSubjectEmpty:    NewRule(Error, Never, nil),
				RuleSubjectFullStop: NewRule(Error, Never, "."),
				RuleTypeCase:        NewRule(Error, Always, "lower-case"),
				RuleTypeEmpty:       NewRule(Error, Never, nil),
				RuleTypeEnum:        NewRule(Error, Always, slices.Clone(ConventionalTypes)),
			},
		}
	},
}

// presetAliases accepts the short names the JavaScript tooling resolves.
var presetAliases = map[string]string{
	"config-conventional":             ConventionalPreset,
	"conventional":                    ConventionalPreset,
	"@commitlint/config-conventional": ConventionalPreset,
}

// Preset returns a copy of a registered preset.
func Preset(name string) (RuleSet, bool) {
	key := strings.TrimSpace(name)
	if alias, ok := presetAliases[key]; ok {
		key = alias
	}
	build, ok := presets[key]
	if !ok {
		return RuleSet{}, false
	}
	return build(), true
}

// Resolve flattens rs: every preset in Extends is applied in order and the
// rule set's own rules are laid on top. The result has no Extends.
func Resolve(rs RuleSet) (RuleSet, error) {
	out := RuleSet{
		Rules:   make(map[string]RuleConfig),
		Ignores: slices.Clone(rs.Ignores),
		HelpURL: rs.HelpURL,
	}
	if rs.DefaultIgnores != nil {
		v := *rs.DefaultIgnores
		out.DefaultIgnores = &v
	}

	for _, name := range rs.Extends {
		preset, ok := Preset(name)
		if !ok {
			return RuleSet{}, apperrors.ErrUnknownPreset.WithContext("preset", name)
		}
		for rule, cfg := range preset.Rules {
			out.Rules[rule] = cfg
		}
	}
	for rule, cfg := range rs.Clone().Rules {
		out.Rules[rule] = cfg
	}
	return out, nil
}
