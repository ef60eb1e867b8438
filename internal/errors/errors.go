package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeLint          ErrorType = "LINT"
	TypeGit           ErrorType = "GIT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if rule, ok := e.Context["rule"].(string); ok && rule != "" {
			msg += fmt.Sprintf(" [rule=%s]", rule)
		}
		if path, ok := e.Context["path"].(string); ok && path != "" {
			msg += fmt.Sprintf(" [path=%s]", path)
		}
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// that errors derived with WithError/WithContext still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrUnknownRule = NewAppError(TypeConfiguration, "Unknown rule name", nil).
			WithSuggestion("Run 'matelint config show --resolved' to list the rules in effect")

	ErrInvalidSeverity = NewAppError(TypeConfiguration, "Rule severity must be 0 (off), 1 (warning) or 2 (error)", nil)

	ErrInvalidApplicability = NewAppError(TypeConfiguration, "Rule applicability must be 'always' or 'never'", nil)

	ErrInvalidRuleValue = NewAppError(TypeConfiguration, "Invalid rule value", nil).
				WithSuggestion("Rules are written as [severity, applicability, value]")

	ErrEmptyTypeEnum = NewAppError(TypeConfiguration, "type-enum needs at least one allowed type", nil)

	ErrUnknownPreset = NewAppError(TypeConfiguration, "Unknown base preset", nil).
				WithSuggestion("Use \"@commitlint/config-conventional\" in extends")

	ErrReadRuleFile = NewAppError(TypeConfiguration, "Failed to read rule file", nil).
			WithSuggestion("Check the path passed with --config")

	ErrDecodeRuleFile = NewAppError(TypeConfiguration, "Failed to decode rule file", nil)

	ErrUnsupportedFormat = NewAppError(TypeConfiguration, "Unsupported file format", nil).
				WithSuggestion("Supported formats: json, yaml, toml")

	ErrInvalidConfig = NewAppError(TypeConfiguration, "Invalid user configuration", nil)

	ErrUnsupportedLanguage = NewAppError(TypeConfiguration, "Language not supported", nil).
				WithSuggestion("Supported languages: en, es, pt-BR")
)

// Lint errors
var (
	ErrNoInput = NewAppError(TypeLint, "No commit message to lint", nil).
			WithSuggestion("Pass a message, pipe it through stdin or use --edit")

	ErrLintFailed = NewAppError(TypeLint, "Commit message does not follow the rules", nil)
)

// Git errors
var (
	ErrNotRepository = NewAppError(TypeGit, "Not inside a git repository", nil).
				WithSuggestion("Run the command from a git working tree")

	ErrReadMessageFile = NewAppError(TypeGit, "Failed to read commit message file", nil)

	ErrGetCommits = NewAppError(TypeGit, "Failed to get commits", nil).
			WithSuggestion("Check that both revisions exist: git log --oneline")

	ErrHookExists = NewAppError(TypeGit, "A commit-msg hook already exists", nil).
			WithSuggestion("Use --force to overwrite it")

	ErrWriteHook = NewAppError(TypeGit, "Failed to write commit-msg hook", nil)

	ErrHookNotOwned = NewAppError(TypeGit, "The commit-msg hook was not installed by matelint", nil).
			WithSuggestion("Remove .git/hooks/commit-msg manually if you no longer need it")
)
