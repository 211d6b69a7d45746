package frequency

import (
	"sort"

	"charfreq/internal/domain"
)

// Peak is the maximum present frequency of a character.
type Peak struct {
	Character string
	Max       int
}

// Peaks returns the peak frequency of every character in first-appearance
// order. A character without present values has a peak of 0.
func Peaks(table domain.FrequencyTable) []Peak {
	spreads := Spreads(table)
	out := make([]Peak, len(spreads))
	for i, s := range spreads {
		out[i] = Peak{Character: s.Character, Max: s.Max}
	}
	return out
}

// PeakOrder returns the characters of table sorted by peak frequency,
// highest first. Ties keep first-appearance order.
func PeakOrder(table domain.FrequencyTable) []string {
	peaks := Peaks(table)
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Max > peaks[j].Max })
	out := make([]string, len(peaks))
	for i, p := range peaks {
		out[i] = p.Character
	}
	return out
}

// OrderByPeak regroups the records of table by character, characters ordered
// by descending peak frequency. Within a group records keep their novel order.
func OrderByPeak(table domain.FrequencyTable) domain.FrequencyTable {
	groups := make(map[string]domain.FrequencyTable)
	for _, rec := range table {
		groups[rec.Character] = append(groups[rec.Character], rec)
	}
	out := make(domain.FrequencyTable, 0, len(table))
	for _, c := range PeakOrder(table) {
		out = append(out, groups[c]...)
	}
	return out
}
