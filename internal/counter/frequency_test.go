package counter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"charfreq/internal/counter"
	"charfreq/internal/tokenize"
)

func TestCountPossessivesAndSentences(t *testing.T) {
	c := counter.NewFrequencyCounter(nil)
	vocab := []string{"harry", "ron"}

	assert.Equal(t, map[string]int{"harry": 2, "ron": 0},
		c.Count("Harry ran. Harry's wand glowed.", vocab))
	assert.Equal(t, map[string]int{"harry": 1, "ron": 1},
		c.Count("Ron and Harry talked.", vocab))
}

func TestCountIsCaseInsensitive(t *testing.T) {
	c := counter.NewFrequencyCounter(tokenize.NewTreebank())
	got := c.Count("HARRY harry Harry HaRrY's", []string{"harry"})
	assert.Equal(t, 4, got["harry"])
}

func TestCountExactOccurrences(t *testing.T) {
	for _, k := range []int{0, 1, 7, 42} {
		text := strings.Repeat("Dobby cried. ", k) + "The elf left."
		c := counter.NewFrequencyCounter(nil)
		assert.Equal(t, k, c.Count(text, []string{"dobby"})["dobby"], "k=%d", k)
	}
}

func TestCountIgnoresNonAlphabeticTokens(t *testing.T) {
	c := counter.NewFrequencyCounter(nil)
	got := c.Tokens("Harry-like 1991 Harry2 ... Harry")
	assert.Equal(t, map[string]int{"harry": 1}, got)
}

func TestCountWithWordsTokenizerMatchesTreebank(t *testing.T) {
	text := "Ron's rat. Ron and Harry's owl; HARRY laughed."
	vocab := []string{"harry", "ron", "hermione"}
	treebank := counter.NewFrequencyCounter(tokenize.NewTreebank()).Count(text, vocab)
	words := counter.NewFrequencyCounter(tokenize.NewWords()).Count(text, vocab)
	assert.Equal(t, treebank, words)
	assert.Equal(t, map[string]int{"harry": 2, "ron": 2, "hermione": 0}, words)
}
