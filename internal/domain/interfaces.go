package domain

// NovelDocument is a single novel loaded for counting.
type NovelDocument struct {
	Title   string
	Path    string
	Content string
}

// Frequency is an optional occurrence count. The zero value is absent.
type Frequency struct {
	Value int
	Valid bool
}

// Present returns a valid frequency for n, or an absent one when n is not positive.
func Present(n int) Frequency {
	if n <= 0 {
		return Frequency{}
	}
	return Frequency{Value: n, Valid: true}
}

// Absent returns a missing frequency.
func Absent() Frequency { return Frequency{} }

// FrequencyRecord is one (novel, character, count) observation.
type FrequencyRecord struct {
	Novel     string
	Character string
	Frequency Frequency
}

// FrequencyTable is a long-format table of records ordered by novel, then vocabulary.
type FrequencyTable []FrequencyRecord

// Tokenizer splits free text into word and punctuation tokens.
type Tokenizer interface {
	Name() string
	Tokenize(text string) []string
}

// WordCounter counts vocabulary words in a text.
type WordCounter interface {
	Count(text string, vocabulary []string) map[string]int
}

// Renderer draws a frequency table across the given novel sequence.
type Renderer interface {
	Render(table FrequencyTable, novels []string) error
}
