// Package chart renders character frequency tables as log-scale line charts.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"charfreq/internal/domain"
	"charfreq/internal/frequency"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Options configures figure size, output file and styling.
type Options struct {
	Path         string
	DPI          float64
	WidthInches  float64
	HeightInches float64

	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	// Theme is "whitegrid" (light grid behind the lines) or "white".
	Theme     string
	Palette   string
	LineWidth float64
	Markers   bool
}

// Renderer draws one line per character across the novel sequence.
type Renderer struct {
	opts Options
}

// New creates a renderer, filling zero sizes with a 12x8 inch, 300 dpi figure.
func New(opts Options) *Renderer {
	if opts.DPI <= 0 {
		opts.DPI = 300
	}
	if opts.WidthInches <= 0 {
		opts.WidthInches = 12
	}
	if opts.HeightInches <= 0 {
		opts.HeightInches = 8
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	return &Renderer{opts: opts}
}

// Render plots table and writes the figure to the configured path.
// Absent frequencies are not plotted. Line colours and legend entries follow
// the character order of table.
func (r *Renderer) Render(table domain.FrequencyTable, novels []string) error {
	p, err := r.Plot(table, novels)
	if err != nil {
		return err
	}
	return r.Save(p)
}

// Plot builds the chart for table without writing it.
func (r *Renderer) Plot(table domain.FrequencyTable, novels []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.opts.Title
	p.X.Label.Text = r.opts.XLabel
	p.Y.Label.Text = r.opts.YLabel

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	position := make(map[string]int, len(novels))
	ticks := make([]plot.Tick, len(novels))
	for i, n := range novels {
		position[n] = i
		ticks[i] = plot.Tick{Value: float64(i), Label: n}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if r.opts.Theme != "white" {
		grid := plotter.NewGrid()
		grid.Vertical.Color = color.Gray{Y: 0xe0}
		grid.Horizontal.Color = color.Gray{Y: 0xe0}
		p.Add(grid)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	if r.opts.LegendTitle != "" {
		p.Legend.Add(r.opts.LegendTitle)
	}

	clean := frequency.DropAbsent(table)
	palette := Palette(r.opts.Palette)
	for i, character := range frequency.Characters(clean) {
		var xys plotter.XYs
		for _, rec := range clean {
			if rec.Character != character {
				continue
			}
			x, ok := position[rec.Novel]
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(x), Y: float64(rec.Frequency.Value)})
		}
		if len(xys) == 0 {
			continue
		}
		sort.Slice(xys, func(a, b int) bool { return xys[a].X < xys[b].X })

		c := palette[i%len(palette)]
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("plot %s: %w", character, err)
		}
		line.Color = c
		line.Width = vg.Points(r.opts.LineWidth)
		p.Add(line)
		thumbs := []plot.Thumbnailer{line}
		if r.opts.Markers {
			points.Shape = draw.CircleGlyph{}
			points.Color = c
			points.Radius = vg.Points(3)
			p.Add(points)
			thumbs = append(thumbs, points)
		}
		p.Legend.Add(character, thumbs...)
	}

	p.X.Min = -0.5
	p.X.Max = math.Max(float64(len(novels))-0.5, 0.5)
	if len(clean) == 0 || p.Y.Min <= 0 || math.IsInf(p.Y.Min, 0) {
		p.Y.Min, p.Y.Max = 1, 10
	} else {
		if p.Y.Min == p.Y.Max {
			p.Y.Min /= 2
			p.Y.Max *= 2
		}
		p.Y.Min *= 0.8
		p.Y.Max *= 1.25
	}
	return p, nil
}

// Save writes p to the configured path. The format follows the file extension.
func (r *Renderer) Save(p *plot.Plot) error {
	path := r.opts.Path
	w := vg.Length(r.opts.WidthInches) * vg.Inch
	h := vg.Length(r.opts.HeightInches) * vg.Inch

	ext := strings.ToLower(filepath.Ext(path))
	var out io.WriterTo
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(r.opts.DPI)))
		p.Draw(draw.New(c))
		switch ext {
		case ".png":
			out = vgimg.PngCanvas{Canvas: c}
		case ".jpg", ".jpeg":
			out = vgimg.JpegCanvas{Canvas: c}
		default:
			out = vgimg.TiffCanvas{Canvas: c}
		}
	case ".svg":
		c := vgsvg.New(w, h)
		p.Draw(draw.New(c))
		out = c
	case ".pdf":
		c := vgpdf.New(w, h)
		p.Draw(draw.New(c))
		out = c
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart: %w", err)
	}
	if _, err := out.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write chart: %w", err)
	}
	return f.Close()
}
