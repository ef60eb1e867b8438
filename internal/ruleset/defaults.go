package ruleset

import "slices"

const (
	// ConventionalPreset is the base preset the default rule set extends.
	ConventionalPreset = "@commitlint/config-conventional"

	// DefaultHeaderMaxLength caps type + scope + subject.
	DefaultHeaderMaxLength = 72
)

// ConventionalTypes are the accepted commit types, in display order.
var ConventionalTypes = []string{
	"feat",
	"fix",
	"docs",
	"style",
	"refactor",
	"perf",
	"test",
	"chore",
	"ci",
	"build",
	"revert",
}

// Default returns the repository rule set:
//
//	extends: ["@commitlint/config-conventional"]
//	type-enum:         [2, "always", [feat ... revert]]
//	type-case:         [2, "always", "lower"]
//	subject-case:      [0]
//	subject-full-stop: [2, "never", "."]
//	header-max-length: [2, "always", 72]
//
// Each call returns a fresh value.
func Default() RuleSet {
	return RuleSet{
		Extends: []string{ConventionalPreset},
		Rules: map[string]RuleConfig{
			RuleTypeEnum:        NewRule(Error, Always, slices.Clone(ConventionalTypes)),
			RuleTypeCase:        NewRule(Error, Always, "lower"),
			RuleSubjectCase:     Disabled(),
			RuleSubjectFullStop: NewRule(Error, Never, "."),
			RuleHeaderMaxLength: NewRule(Error, Always, DefaultHeaderMaxLength),
		},
	}
}
