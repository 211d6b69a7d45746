package frequency

import (
	"sort"

	"charfreq/internal/domain"
)

// Spread is the change in frequency of a character across novels.
type Spread struct {
	Character string
	Min       int
	Max       int
	// Present is the number of novels with a present frequency.
	Present int
}

// Value returns Max - Min.
func (s Spread) Value() int { return s.Max - s.Min }

// Spreads computes the min and max present frequency of every character, in
// first-appearance order. Absent values are excluded; a character with no
// present value has Present == 0.
func Spreads(table domain.FrequencyTable) []Spread {
	index := make(map[string]int)
	var out []Spread
	for _, rec := range table {
		i, ok := index[rec.Character]
		if !ok {
			i = len(out)
			index[rec.Character] = i
			out = append(out, Spread{Character: rec.Character})
		}
		if !rec.Frequency.Valid {
			continue
		}
		s := &out[i]
		v := rec.Frequency.Value
		if s.Present == 0 || v < s.Min {
			s.Min = v
		}
		if s.Present == 0 || v > s.Max {
			s.Max = v
		}
		s.Present++
	}
	return out
}

// TopChanging returns up to n characters with the largest spread, largest
// first. Ties keep first-appearance order. Characters with no present value
// are never selected.
func TopChanging(table domain.FrequencyTable, n int) []string {
	if n <= 0 {
		return nil
	}
	var eligible []Spread
	for _, s := range Spreads(table) {
		if s.Present > 0 {
			eligible = append(eligible, s)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool { return eligible[i].Value() > eligible[j].Value() })
	if n > len(eligible) {
		n = len(eligible)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = eligible[i].Character
	}
	return out
}

// SelectTopChanging keeps the records of the n characters with the greatest
// change in frequency, preserving record order.
func SelectTopChanging(table domain.FrequencyTable, n int) domain.FrequencyTable {
	return Filter(table, TopChanging(table, n))
}
