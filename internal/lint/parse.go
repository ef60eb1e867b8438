package lint

import (
	"strings"

	"github.com/Tomas-vilte/matelint/internal/regex"
)

const scissors = "# ------------------------ >8 ------------------------"

// Commit is a commit message split into its conventional parts.
type Commit struct {
	Raw      string
	Header   string
	Type     string
	Scope    string
	Subject  string
	Breaking bool
	Body     string
	Footer   string

	// lines are the message lines after comment stripping; bodyStart and
	// footerStart index into them (-1 when absent).
	lines       []string
	bodyStart   int
	footerStart int
}

// Parse splits a raw commit message. Git comment lines and everything below
// the scissors line are dropped first. A header that does not follow
// "type(scope)!: subject" leaves Type, Scope and Subject empty.
func Parse(message string) Commit {
	lines := cleanLines(message)
	c := Commit{Raw: message, lines: lines, bodyStart: -1, footerStart: -1}
	if len(lines) == 0 {
		return c
	}

	c.Header = lines[0]
	if m := regex.CommitHeader.FindStringSubmatch(c.Header); m != nil {
		c.Type = m[1]
		c.Scope = m[2]
		c.Breaking = m[3] != ""
		c.Subject = m[4]
	}

	rest := lines[1:]
	footerAt := len(rest)
	for i, line := range rest {
		if regex.FooterTrailer.MatchString(line) {
			footerAt = i
			break
		}
	}

	if body := strings.Trim(strings.Join(rest[:footerAt], "\n"), "\n"); strings.TrimSpace(body) != "" {
		c.Body = body
		for i, line := range rest[:footerAt] {
			if strings.TrimSpace(line) != "" {
				c.bodyStart = i + 1
				break
			}
		}
	}
	if footerAt < len(rest) {
		c.Footer = strings.Trim(strings.Join(rest[footerAt:], "\n"), "\n")
		c.footerStart = footerAt + 1
		if strings.HasPrefix(c.Footer, "BREAKING CHANGE") || strings.Contains(c.Footer, "\nBREAKING CHANGE") ||
			strings.HasPrefix(c.Footer, "BREAKING-CHANGE") || strings.Contains(c.Footer, "\nBREAKING-CHANGE") {
			c.Breaking = true
		}
	}

	return c
}

func cleanLines(message string) []string {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	if idx := strings.Index(message, scissors); idx >= 0 {
		message = message[:idx]
	}

	var out []string
	for _, line := range strings.Split(message, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}

	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	return out
}

// blankBefore reports whether the line preceding index i is blank.
func (c Commit) blankBefore(i int) bool {
	if i <= 0 || i > len(c.lines) {
		return false
	}
	return strings.TrimSpace(c.lines[i-1]) == ""
}
