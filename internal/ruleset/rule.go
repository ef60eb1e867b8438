package ruleset

import (
	"encoding/json"
	"fmt"
	"math"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"gopkg.in/yaml.v3"
)

// RuleConfig is the (severity, applicability, value) triple of a single rule.
// It serializes as the array [severity, applicability, value]; trailing
// elements that are unset are omitted, so an "off" rule encodes as [0].
type RuleConfig struct {
	Severity Severity
	When     Applicability
	Value    any
}

// Disabled returns the [0] rule.
func Disabled() RuleConfig {
	return RuleConfig{Severity: Off}
}

// NewRule builds a rule with a condition and an optional value.
func NewRule(severity Severity, when Applicability, value any) RuleConfig {
	return RuleConfig{Severity: severity, When: when, Value: value}
}

// Enabled reports whether the consuming linter has to evaluate the rule.
func (r RuleConfig) Enabled() bool {
	return r.Severity != Off
}

// Applicability returns the rule direction, defaulting to "always".
func (r RuleConfig) Applicability() Applicability {
	if r.When == "" {
		return Always
	}
	return r.When
}

// Raw returns the array form of the rule.
func (r RuleConfig) Raw() []any {
	raw := []any{int(r.Severity)}
	if r.When == "" && r.Value == nil {
		return raw
	}
	raw = append(raw, string(r.Applicability()))
	if r.Value == nil {
		return raw
	}
	return append(raw, r.Value)
}

// StringValue returns the value when it is a single string.
func (r RuleConfig) StringValue() (string, bool) {
	s, ok := r.Value.(string)
	return s, ok
}

// StringsValue returns the value as a list. A single string is returned as a
// one element list.
func (r RuleConfig) StringsValue() ([]string, bool) {
	switch v := r.Value.(type) {
	case []string:
		return v, true
	case string:
		return []string{v}, true
	default:
		return nil, false
	}
}

// IntValue returns the value when it is an integer.
func (r RuleConfig) IntValue() (int, bool) {
	i, ok := r.Value.(int)
	return i, ok
}

// FromRaw builds a RuleConfig from its decoded array form. Numbers may come
// from any of the supported decoders (float64 from JSON, int64 from TOML,
// int from YAML).
func FromRaw(raw []any) (RuleConfig, error) {
	if len(raw) == 0 || len(raw) > 3 {
		return RuleConfig{}, apperrors.ErrInvalidRuleValue.
			WithError(fmt.Errorf("expected 1 to 3 elements, got %d", len(raw)))
	}

	sev, err := toInt(raw[0])
	if err != nil {
		return RuleConfig{}, apperrors.ErrInvalidSeverity.WithError(err)
	}
	rule := RuleConfig{Severity: Severity(sev)}
	if !rule.Severity.valid() {
		return RuleConfig{}, apperrors.ErrInvalidSeverity.WithContext("value", sev)
	}

	if len(raw) > 1 {
		s, ok := raw[1].(string)
		if !ok {
			return RuleConfig{}, apperrors.ErrInvalidApplicability.
				WithError(fmt.Errorf("expected a string, got %T", raw[1]))
		}
		when, err := ParseApplicability(s)
		if err != nil {
			return RuleConfig{}, apperrors.ErrInvalidApplicability.WithError(err)
		}
		rule.When = when
	}

	if len(raw) > 2 {
		value, err := normalizeValue(raw[2])
		if err != nil {
			return RuleConfig{}, apperrors.ErrInvalidRuleValue.WithError(err)
		}
		rule.Value = value
	}

	return rule, nil
}

func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case string, bool:
		return val, nil
	case []string:
		return append([]string(nil), val...), nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list values must be strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		i, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("unsupported value %v (%T)", v, v)
		}
		return i, nil
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		return int(i), err
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func (r RuleConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Raw())
}

func (r *RuleConfig) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperrors.ErrInvalidRuleValue.WithError(err)
	}
	rule, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// MarshalYAML renders the rule as a flow sequence: [2, always, 72].
func (r RuleConfig) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{}
	if err := node.Encode(r.Raw()); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	for _, child := range node.Content {
		if child.Kind == yaml.SequenceNode {
			child.Style = yaml.FlowStyle
		}
	}
	return node, nil
}

func (r *RuleConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw []any
	if err := value.Decode(&raw); err != nil {
		return apperrors.ErrInvalidRuleValue.WithError(err)
	}
	rule, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (r *RuleConfig) UnmarshalTOML(v any) error {
	raw, ok := v.([]any)
	if !ok {
		return apperrors.ErrInvalidRuleValue.WithError(fmt.Errorf("expected an array, got %T", v))
	}
	rule, err := FromRaw(raw)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}
