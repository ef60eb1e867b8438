package regex

import "regexp"

var (
	// Commit message structure
	CommitHeader  = regexp.MustCompile(`^(\w*)(?:\(([^)]*)\))?(!)?: (.*)$`)
	FooterTrailer = regexp.MustCompile(`^(BREAKING[ -]CHANGE|[A-Za-z][\w-]*)(: | #)`)

	// Rule helpers
	URL             = regexp.MustCompile(`[a-z][a-z0-9+.-]*://\S+`)
	ScopeDelimiters = regexp.MustCompile(`[/\\,]`)
	QuotedFragment  = regexp.MustCompile("`.*?`|\".*?\"|'.*?'")

	// Headers git writes on its own, skipped unless defaultIgnores is false
	MergePullRequest = regexp.MustCompile(`^(Merge pull request|Merge (.*?) into (.*)|Merge branch (.*))`)
	MergeTag         = regexp.MustCompile(`^Merge tag (.*)`)
	Revert           = regexp.MustCompile(`^(R|r)evert (.*)`)
	AutosquashPrefix = regexp.MustCompile(`^(amend|fixup|squash)!`)
	Merged           = regexp.MustCompile(`^(Merged (.*?)(in|into) (.*))`)
	MergeRemote      = regexp.MustCompile(`^Merge remote-tracking branch(\s*)(.*)`)
	AutomaticMerge   = regexp.MustCompile(`^Automatic merge(.*)`)
	AutoMerged       = regexp.MustCompile(`^Auto-merged (.*?) into (.*)`)
)

// DefaultIgnores returns the patterns for generated headers.
func DefaultIgnores() []*regexp.Regexp {
	return []*regexp.Regexp{
		MergePullRequest,
		MergeTag,
		Revert,
		AutosquashPrefix,
		Merged,
		MergeRemote,
		AutomaticMerge,
		AutoMerged,
	}
}
