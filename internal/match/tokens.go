// ABOUTME: Text normalisation and tokenisation for matching
// ABOUTME: NFKC + case folding, split on non-alphanumerics
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

func normalize(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// words splits normalised text into alphanumeric runs.
func words(s string) []string {
	return strings.FieldsFunc(normalize(s), isSeparator)
}

// tokenize returns the distinct words of s that are longer than one rune, in order.
func tokenize(s string) []string {
	tokens := lo.Filter(words(s), func(w string, _ int) bool {
		return utf8.RuneCountInString(w) > 1
	})
	return lo.Uniq(tokens)
}

// phrase is s reduced to single-spaced normalised words.
func phrase(s string) string {
	return strings.Join(words(s), " ")
}
