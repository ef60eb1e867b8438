package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitHeader(t *testing.T) {
	tests := []struct {
		header string
		want   []string
	}{
		{"feat(parser): add arrays", []string{"feat", "parser", "", "add arrays"}},
		{"fix!: drop node 12", []string{"fix", "", "!", "drop node 12"}},
		{"chore: ", []string{"chore", "", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			m := CommitHeader.FindStringSubmatch(tt.header)
			if assert.NotNil(t, m) {
				assert.Equal(t, tt.want, m[1:])
			}
		})
	}

	assert.Nil(t, CommitHeader.FindStringSubmatch("just some words"))
}

func TestFooterTrailer(t *testing.T) {
	assert.True(t, FooterTrailer.MatchString("BREAKING CHANGE: config moved"))
	assert.True(t, FooterTrailer.MatchString("Refs #123"))
	assert.True(t, FooterTrailer.MatchString("Reviewed-by: Someone"))
	assert.False(t, FooterTrailer.MatchString("plain body text"))
}

func TestDefaultIgnores(t *testing.T) {
	matches := func(header string) bool {
		for _, re := range DefaultIgnores() {
			if re.MatchString(header) {
				return true
			}
		}
		return false
	}

	for _, header := range []string{
		"Merge pull request #42 from acme/feature",
		"Merge branch 'main' into dev",
		"Merge tag 'v1.0.0'",
		"Revert \"feat: add login\"",
		"fixup! feat: add login",
		"amend! fix: typo",
		"Merged feature/login into main",
		"Merge remote-tracking branch 'origin/main'",
		"Automatic merge from CI",
		"Auto-merged feature into main",
	} {
		assert.True(t, matches(header), header)
	}
	assert.False(t, matches("feat: merge two lists"))
}
