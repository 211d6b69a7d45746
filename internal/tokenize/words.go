package tokenize

import "regexp"

// Words matches runs of letters joined by apostrophes, so possessives stay
// attached to their word and are removed later by NormalizeWord.
type Words struct {
	tokenPattern *regexp.Regexp
}

// NewWords creates a letter-run tokenizer.
func NewWords() *Words {
	return &Words{tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)}
}

// Name returns the config identifier of this tokenizer.
func (w *Words) Name() string { return "words" }

// Tokenize returns the letter runs of text in order.
func (w *Words) Tokenize(text string) []string {
	return w.tokenPattern.FindAllString(prepare(text), -1)
}
