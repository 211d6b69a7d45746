package tokenize

import (
	"regexp"
	"strings"
)

// clitics are split from the word they are attached to, longest first where
// they share a suffix.
var clitics = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

// Treebank splits text on word boundaries, separating punctuation into its own
// tokens and English clitics from their host word ("Harry's" -> "Harry", "'s";
// "don't" -> "do", "n't"). Hyphenated words stay whole.
type Treebank struct {
	tokenPattern *regexp.Regexp
}

// NewTreebank creates the default word-boundary tokenizer.
func NewTreebank() *Treebank {
	return &Treebank{
		tokenPattern: regexp.MustCompile(`[\p{L}\p{M}\p{N}]+(?:[-'][\p{L}\p{M}\p{N}]+)*|[^\s\p{L}\p{M}\p{N}]`),
	}
}

// Name returns the config identifier of this tokenizer.
func (t *Treebank) Name() string { return "treebank" }

// Tokenize returns word and punctuation tokens in text order.
func (t *Treebank) Tokenize(text string) []string {
	raw := t.tokenPattern.FindAllString(prepare(text), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		out = append(out, splitClitic(tok)...)
	}
	return out
}

func splitClitic(tok string) []string {
	for _, c := range clitics {
		cut := len(tok) - len(c)
		if cut <= 0 {
			continue
		}
		if strings.EqualFold(tok[cut:], c) {
			return []string{tok[:cut], tok[cut:]}
		}
	}
	return []string{tok}
}
