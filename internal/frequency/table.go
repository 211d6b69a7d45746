// Package frequency builds the long-format character frequency table and
// selects and orders the characters worth plotting.
package frequency

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"charfreq/internal/domain"
)

// BuildTable assembles one record per (novel, vocabulary word) pair, in novel
// order then vocabulary order. counts[i] holds the counts for titles[i]; a
// zero or missing count is recorded as absent, as is every word of a novel
// whose counts are nil.
func BuildTable(titles []string, counts []map[string]int, vocabulary []string) domain.FrequencyTable {
	table := make(domain.FrequencyTable, 0, len(titles)*len(vocabulary))
	for i, title := range titles {
		var novelCounts map[string]int
		if i < len(counts) {
			novelCounts = counts[i]
		}
		for _, word := range vocabulary {
			freq := domain.Absent()
			if novelCounts != nil {
				freq = domain.Present(novelCounts[word])
			}
			table = append(table, domain.FrequencyRecord{
				Novel:     title,
				Character: Capitalize(word),
				Frequency: freq,
			})
		}
	}
	return table
}

// Capitalize title-cases the first letter of word and leaves the rest as is.
func Capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return cases.Title(language.Und).String(word[:size]) + word[size:]
}

// Characters returns the distinct characters of table in first-appearance order.
func Characters(table domain.FrequencyTable) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range table {
		if _, ok := seen[rec.Character]; ok {
			continue
		}
		seen[rec.Character] = struct{}{}
		out = append(out, rec.Character)
	}
	return out
}

// Filter returns the records whose character is in keep, preserving order.
func Filter(table domain.FrequencyTable, keep []string) domain.FrequencyTable {
	set := make(map[string]struct{}, len(keep))
	for _, c := range keep {
		set[c] = struct{}{}
	}
	out := make(domain.FrequencyTable, 0, len(table))
	for _, rec := range table {
		if _, ok := set[rec.Character]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// DropAbsent returns only the records with a present frequency.
func DropAbsent(table domain.FrequencyTable) domain.FrequencyTable {
	out := make(domain.FrequencyTable, 0, len(table))
	for _, rec := range table {
		if rec.Frequency.Valid {
			out = append(out, rec)
		}
	}
	return out
}
