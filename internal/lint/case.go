package lint

import (
	"strings"
	"unicode"

	"github.com/Tomas-vilte/matelint/internal/regex"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

// ensureCase reports whether raw is already written in the target case.
// Quoted fragments are ignored, and empty input or input that starts with a
// digit is accepted for every case.
func ensureCase(raw, target string) bool {
	input := strings.TrimSpace(regex.QuotedFragment.ReplaceAllString(raw, ""))
	transformed := toCase(input, target)
	if transformed == "" || unicode.IsDigit([]rune(transformed)[0]) {
		return true
	}
	return transformed == input
}

func toCase(input, target string) string {
	switch target {
	case "lower-case", "lowercase", "lower":
		return lowerCaser.String(input)
	case "upper-case", "uppercase", "upper":
		return upperCaser.String(input)
	case "camel-case":
		return strutil.CamelCase(input)
	case "pascal-case":
		return strutil.UpperFirst(strutil.CamelCase(input))
	case "kebab-case":
		return strutil.KebabCase(input)
	case "snake-case":
		return strutil.SnakeCase(input)
	case "start-case":
		return strings.Join(lo.Map(startWords(input), func(w string, _ int) string {
			return strutil.UpperFirst(w)
		}), " ")
	case "sentence-case", "sentencecase":
		return strutil.UpperFirst(input)
	default:
		return input
	}
}

// startWords splits s for start case. Unlike strutil's splitting it keeps
// each word's letters as written, so acronyms survive ("Add HTTP Server"),
// and it treats non-ASCII letters as part of a word.
func startWords(s string) []string {
	var (
		out     []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 {
			prev := current[len(current)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return out
}
