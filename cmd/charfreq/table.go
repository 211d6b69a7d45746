package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"charfreq/internal/domain"
	"charfreq/internal/frequency"
)

// renderFrequencyTable pivots the ordered records into one row per character
// with a column per novel, followed by the character's peak and spread.
func renderFrequencyTable(ordered domain.FrequencyTable, titles []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := table.Row{"Character"}
	for _, t := range titles {
		header = append(header, t)
	}
	header = append(header, "Peak", "Spread")
	tw.AppendHeader(header)

	column := make(map[string]int, len(titles))
	for i, t := range titles {
		column[t] = i
	}
	spreads := make(map[string]frequency.Spread)
	for _, s := range frequency.Spreads(ordered) {
		spreads[s.Character] = s
	}

	for _, character := range frequency.Characters(ordered) {
		cells := make([]string, len(titles))
		for i := range cells {
			cells[i] = "-"
		}
		for _, rec := range ordered {
			if rec.Character != character || !rec.Frequency.Valid {
				continue
			}
			if i, ok := column[rec.Novel]; ok {
				cells[i] = strconv.Itoa(rec.Frequency.Value)
			}
		}
		s := spreads[character]
		row := table.Row{character}
		for _, c := range cells {
			row = append(row, c)
		}
		row = append(row, s.Max, s.Value())
		tw.AppendRow(row)
	}

	configs := make([]table.ColumnConfig, 0, len(header))
	for i := 2; i <= len(header); i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}
