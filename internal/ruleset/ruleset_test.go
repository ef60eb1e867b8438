package ruleset

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	t.Run("should serialize to the commitlint shape", func(t *testing.T) {
		data, err := json.Marshal(Default())
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"extends": ["@commitlint/config-conventional"],
			"rules": {
				"type-enum": [2, "always", ["feat","fix","docs","style","refactor","perf","test","chore","ci","build","revert"]],
				"type-case": [2, "always", "lower"],
				"subject-case": [0],
				"subject-full-stop": [2, "never", "."],
				"header-max-length": [2, "always", 72]
			}
		}`, string(data))
	})

	t.Run("should keep the type order", func(t *testing.T) {
		rule, ok := Default().Rule(RuleTypeEnum)
		require.True(t, ok)

		types, ok := rule.StringsValue()
		require.True(t, ok)
		assert.Equal(t, []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "chore", "ci", "build", "revert"}, types)
	})

	t.Run("should return independent copies", func(t *testing.T) {
		a := Default()
		a.Rules[RuleHeaderMaxLength] = NewRule(Error, Always, 50)
		a.Rules[RuleTypeEnum].Value.([]string)[0] = "feature"

		b := Default()
		n, _ := b.Rules[RuleHeaderMaxLength].IntValue()
		assert.Equal(t, 72, n)
		assert.Equal(t, "feat", b.Rules[RuleTypeEnum].Value.([]string)[0])
	})

	t.Run("should pass validation", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("should list rule names sorted", func(t *testing.T) {
		assert.Equal(t, []string{
			"header-max-length", "subject-case", "subject-full-stop", "type-case", "type-enum",
		}, Default().Names())
	})
}

func TestRuleConfig_Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RuleConfig
	}{
		{
			name:     "disabled rule",
			input:    `[0]`,
			expected: Disabled(),
		},
		{
			name:     "rule without value",
			input:    `[1, "always"]`,
			expected: NewRule(Warning, Always, nil),
		},
		{
			name:     "integer value",
			input:    `[2, "always", 72]`,
			expected: NewRule(Error, Always, 72),
		},
		{
			name:     "list value",
			input:    `[2, "always", ["feat", "fix"]]`,
			expected: NewRule(Error, Always, []string{"feat", "fix"}),
		},
		{
			name:     "applicability is case-insensitive",
			input:    `[2, "NEVER", "."]`,
			expected: NewRule(Error, Never, "."),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rule RuleConfig
			require.NoError(t, json.Unmarshal([]byte(tt.input), &rule))
			assert.Equal(t, tt.expected, rule)
		})
	}
}

func TestRuleConfig_DecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
	}{
		{name: "empty array", input: `[]`, sentinel: apperrors.ErrInvalidRuleValue},
		{name: "too many elements", input: `[2, "always", 1, 2]`, sentinel: apperrors.ErrInvalidRuleValue},
		{name: "severity out of range", input: `[3]`, sentinel: apperrors.ErrInvalidSeverity},
		{name: "fractional severity", input: `[1.5]`, sentinel: apperrors.ErrInvalidSeverity},
		{name: "unknown applicability", input: `[2, "sometimes"]`, sentinel: apperrors.ErrInvalidApplicability},
		{name: "mixed list", input: `[2, "always", ["feat", 1]]`, sentinel: apperrors.ErrInvalidRuleValue},
		{name: "not an array", input: `{"severity": 2}`, sentinel: apperrors.ErrInvalidRuleValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rule RuleConfig
			err := json.Unmarshal([]byte(tt.input), &rule)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestRuleSet_YAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "subject-case: [0]")

	var decoded RuleSet
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, Default(), decoded)
}

func TestRuleSet_DecodeTOML(t *testing.T) {
	input := `
extends = ["@commitlint/config-conventional"]

[rules]
type-enum = [2, "always", ["feat", "fix"]]
subject-case = [0]
header-max-length = [2, "always", 72]
`
	var rs RuleSet
	_, err := toml.Decode(input, &rs)
	require.NoError(t, err)

	assert.Equal(t, []string{ConventionalPreset}, rs.Extends)
	assert.Equal(t, NewRule(Error, Always, []string{"feat", "fix"}), rs.Rules[RuleTypeEnum])
	assert.Equal(t, Disabled(), rs.Rules[RuleSubjectCase])
	assert.Equal(t, NewRule(Error, Always, 72), rs.Rules[RuleHeaderMaxLength])
}

func TestRuleSet_Validate(t *testing.T) {
	tests := []struct {
		name     string
		rules    map[string]RuleConfig
		sentinel error
	}{
		{
			name:     "empty type list",
			rules:    map[string]RuleConfig{RuleTypeEnum: NewRule(Error, Always, []string{})},
			sentinel: apperrors.ErrEmptyTypeEnum,
		},
		{
			name:     "upper-case type token",
			rules:    map[string]RuleConfig{RuleTypeEnum: NewRule(Error, Always, []string{"feat", "Fix"})},
			sentinel: apperrors.ErrInvalidRuleValue,
		},
		{
			name:     "zero header length",
			rules:    map[string]RuleConfig{RuleHeaderMaxLength: NewRule(Error, Always, 0)},
			sentinel: apperrors.ErrInvalidRuleValue,
		},
		{
			name:     "header length as string",
			rules:    map[string]RuleConfig{RuleHeaderMaxLength: NewRule(Error, Always, "72")},
			sentinel: apperrors.ErrInvalidRuleValue,
		},
		{
			name:     "unknown case token",
			rules:    map[string]RuleConfig{RuleTypeCase: NewRule(Error, Always, "shouting-case")},
			sentinel: apperrors.ErrInvalidRuleValue,
		},
		{
			name:     "invalid severity",
			rules:    map[string]RuleConfig{RuleTypeCase: {Severity: 7}},
			sentinel: apperrors.ErrInvalidSeverity,
		},
		{
			name:     "invalid applicability",
			rules:    map[string]RuleConfig{RuleTypeCase: {Severity: Error, When: "maybe", Value: "lower"}},
			sentinel: apperrors.ErrInvalidApplicability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RuleSet{Rules: tt.rules}.Validate()
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}

	t.Run("should ignore the value of disabled rules", func(t *testing.T) {
		rs := RuleSet{Rules: map[string]RuleConfig{
			RuleHeaderMaxLength: {Severity: Off, When: Always, Value: -1},
		}}
		assert.NoError(t, rs.Validate())
	})
}

func TestResolve(t *testing.T) {
	t.Run("should overlay rules on the preset", func(t *testing.T) {
		resolved, err := Resolve(Default())
		require.NoError(t, err)

		assert.Empty(t, resolved.Extends)
		assert.Equal(t, NewRule(Error, Always, 72), resolved.Rules[RuleHeaderMaxLength])
		assert.Equal(t, Disabled(), resolved.Rules[RuleSubjectCase])
		assert.Equal(t, NewRule(Error, Always, "lower"), resolved.Rules[RuleTypeCase])
		assert.Equal(t, NewRule(Error, Never, nil), resolved.Rules[RuleTypeEmpty])
		assert.Equal(t, NewRule(Warning, Always, nil), resolved.Rules[RuleBodyLeadingBlank])
		assert.NoError(t, resolved.Validate())
	})

	t.Run("should accept preset aliases", func(t *testing.T) {
		resolved, err := Resolve(RuleSet{Extends: []string{"config-conventional"}})
		require.NoError(t, err)
		n, _ := resolved.Rules[RuleHeaderMaxLength].IntValue()
		assert.Equal(t, 100, n)
	})

	t.Run("should fail on unknown presets", func(t *testing.T) {
		_, err := Resolve(RuleSet{Extends: []string{"@commitlint/config-angular"}})
		assert.ErrorIs(t, err, apperrors.ErrUnknownPreset)
	})

	t.Run("should not share state with the input", func(t *testing.T) {
		rs := Default()
		resolved, err := Resolve(rs)
		require.NoError(t, err)

		resolved.Rules[RuleTypeEnum].Value.([]string)[0] = "feature"
		assert.Equal(t, "feat", rs.Rules[RuleTypeEnum].Value.([]string)[0])
	})
}
