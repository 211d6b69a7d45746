package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var palettes = map[string][]color.Color{
	"tab10": hexColors("#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"),
	"dark":  hexColors("#001c7f", "#b1400d", "#12711c", "#8c0800", "#591e71", "#592f0d", "#a23582", "#3c3c3c", "#b8850a", "#006374"),
}

// Palette returns the named line palette, defaulting to tab10.
func Palette(name string) []color.Color {
	if p, ok := palettes[strings.ToLower(name)]; ok {
		return p
	}
	return palettes["tab10"]
}

// hexColors parses "#rrggbb" colours and panics on a malformed one.
func hexColors(hexes ...string) []color.Color {
	out := make([]color.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("chart palette: %v", err))
		}
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out
}
