package counter

import (
	"charfreq/internal/domain"
	"charfreq/internal/tokenize"
)

// FrequencyCounter counts normalised alphabetic tokens against a vocabulary.
type FrequencyCounter struct {
	tokenizer domain.Tokenizer
}

// NewFrequencyCounter creates a counter using the given tokenizer, falling back
// to the treebank tokenizer when nil.
func NewFrequencyCounter(tokenizer domain.Tokenizer) *FrequencyCounter {
	if tokenizer == nil {
		tokenizer = tokenize.NewTreebank()
	}
	return &FrequencyCounter{tokenizer: tokenizer}
}

// Count returns the number of occurrences of every vocabulary word in text.
// Words that never occur map to 0.
func (c *FrequencyCounter) Count(text string, vocabulary []string) map[string]int {
	freq := c.Tokens(text)
	out := make(map[string]int, len(vocabulary))
	for _, word := range vocabulary {
		out[word] = freq[word]
	}
	return out
}

// Tokens returns the frequency of every normalised alphabetic token in text.
func (c *FrequencyCounter) Tokens(text string) map[string]int {
	freq := map[string]int{}
	for _, tok := range c.tokenizer.Tokenize(text) {
		word := tokenize.NormalizeWord(tok)
		if !tokenize.IsAlpha(word) {
			continue
		}
		freq[word]++
	}
	return freq
}
