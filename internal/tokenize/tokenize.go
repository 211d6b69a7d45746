// Package tokenize splits novel text into word tokens and normalises word forms
// for vocabulary counting.
package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// prepare composes accents and folds typographic apostrophes so that
// "Harry’s" and "Harry's" tokenize the same way.
func prepare(text string) string {
	return apostrophes.Replace(norm.NFC.String(text))
}

// IsAlpha reports whether tok is non-empty and made only of letters.
func IsAlpha(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NormalizeWord removes a single trailing possessive "'s" (any case) and
// lowercases the rest. Other possessive forms such as a bare trailing
// apostrophe are left alone.
func NormalizeWord(word string) string {
	if n := len(word); n >= 2 && word[n-2] == '\'' && (word[n-1] == 's' || word[n-1] == 'S') {
		word = word[:n-2]
	}
	return strings.ToLower(word)
}
