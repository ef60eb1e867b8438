// Package lint evaluates commit messages against a rule set.
package lint

import (
	"context"
	"regexp"
	"strings"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/regex"
	"github.com/Tomas-vilte/matelint/internal/ruleset"
)

// Problem is a single failed rule.
type Problem struct {
	Level ruleset.Severity `json:"level"`
	Name  string           `json:"name"`
	// Message is the rendered text. The linter leaves it empty; reporters
	// fill it from MessageID and Data in the user's language.
	Message   string         `json:"message"`
	MessageID string         `json:"-"`
	Data      map[string]any `json:"-"`
}

// Report is the outcome of linting one message.
type Report struct {
	Valid    bool      `json:"valid"`
	Ignored  bool      `json:"ignored,omitempty"`
	Input    string    `json:"input"`
	Errors   []Problem `json:"errors"`
	Warnings []Problem `json:"warnings"`
}

// Linter evaluates messages against a resolved rule set. It holds no mutable
// state and may be shared between goroutines.
type Linter struct {
	rules   ruleset.RuleSet
	names   []string
	ignores []*regexp.Regexp
}

// New resolves the presets of rs, validates the result and rejects rule
// names that have no implementation.
func New(rs ruleset.RuleSet) (*Linter, error) {
	resolved, err := ruleset.Resolve(rs)
	if err != nil {
		return nil, err
	}

	names := resolved.Names()
	for _, name := range names {
		if _, ok := registry[name]; !ok {
			return nil, apperrors.ErrUnknownRule.WithContext("rule", name)
		}
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	var ignores []*regexp.Regexp
	if resolved.UsesDefaultIgnores() {
		ignores = append(ignores, regex.DefaultIgnores()...)
	}
	for _, pattern := range resolved.Ignores {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, apperrors.ErrInvalidRuleValue.WithContext("rule", "ignores").WithError(err)
		}
		ignores = append(ignores, re)
	}

	return &Linter{rules: resolved, names: names, ignores: ignores}, nil
}

// Rules returns a copy of the resolved rule set in effect.
func (l *Linter) Rules() ruleset.RuleSet {
	return l.rules.Clone()
}

// IsIgnored reports whether message matches one of the ignore patterns.
func (l *Linter) IsIgnored(message string) bool {
	header := Parse(message).Header
	for _, re := range l.ignores {
		if re.MatchString(header) {
			return true
		}
	}
	return false
}

// Lint evaluates every enabled rule against message. Disabled rules are
// never run. Problems are ordered by rule name.
func (l *Linter) Lint(ctx context.Context, message string) Report {
	report := Report{
		Input:    strings.TrimRight(message, "\n"),
		Errors:   []Problem{},
		Warnings: []Problem{},
	}

	if l.IsIgnored(message) {
		logger.Debug(ctx, "message ignored", "header", Parse(message).Header)
		report.Valid = true
		report.Ignored = true
		return report
	}

	commit := Parse(message)
	for _, name := range l.names {
		cfg := l.rules.Rules[name]
		if !cfg.Enabled() {
			continue
		}

		ok, msg := registry[name](commit, cfg.Applicability(), cfg.Value)
		logger.Debug(ctx, "rule evaluated", "rule", name, "passed", ok)
		if ok {
			continue
		}

		problem := Problem{Level: cfg.Severity, Name: name, MessageID: msg.ID, Data: msg.Data}
		if cfg.Severity == ruleset.Error {
			report.Errors = append(report.Errors, problem)
		} else {
			report.Warnings = append(report.Warnings, problem)
		}
	}

	report.Valid = len(report.Errors) == 0
	return report
}
