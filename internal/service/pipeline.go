package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"charfreq/internal/corpus"
	"charfreq/internal/domain"
	"charfreq/internal/frequency"
)

// Novel is a novel text file and its display title.
type Novel struct {
	Path  string
	Title string
}

// Result holds the tables produced by one pipeline run.
type Result struct {
	Vocabulary []string
	Titles     []string
	// Table has one record per (novel, vocabulary word).
	Table domain.FrequencyTable
	// Ordered holds the top-changing characters grouped by descending peak.
	Ordered domain.FrequencyTable
}

// Pipeline counts vocabulary words across novels and renders the result.
type Pipeline struct {
	counter  domain.WordCounter
	renderer domain.Renderer
	logger   *slog.Logger
	topN     int
}

// NewPipeline wires the pipeline stages. renderer may be nil when only Build is used.
func NewPipeline(counter domain.WordCounter, renderer domain.Renderer, logger *slog.Logger, topN int) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{counter: counter, renderer: renderer, logger: logger, topN: topN}
}

// Run builds the frequency tables and renders the ordered selection.
func (p *Pipeline) Run(ctx context.Context, vocabularyPath string, novels []Novel) (*Result, error) {
	res, err := p.Build(ctx, vocabularyPath, novels)
	if err != nil {
		return nil, err
	}
	if p.renderer == nil {
		return res, nil
	}
	if err := p.renderer.Render(res.Ordered, res.Titles); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return res, nil
}

// Build loads the vocabulary, counts it in every novel and selects and
// orders the top-changing characters. An unreadable novel is logged and
// contributes only absent frequencies.
func (p *Pipeline) Build(ctx context.Context, vocabularyPath string, novels []Novel) (*Result, error) {
	vocabulary, err := corpus.LoadVocabulary(vocabularyPath)
	if err != nil {
		return nil, err
	}
	p.logger.Info("vocabulary loaded", "path", vocabularyPath, "words", len(vocabulary))

	counts, err := p.CountNovels(ctx, novels, vocabulary)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(novels))
	for i, n := range novels {
		titles[i] = n.Title
	}
	table := frequency.BuildTable(titles, counts, vocabulary)
	selected := frequency.SelectTopChanging(table, p.topN)
	ordered := frequency.OrderByPeak(selected)
	p.logger.Info("characters selected",
		"top_n", p.topN,
		"selected", len(frequency.Characters(ordered)),
		"records", len(table),
	)
	return &Result{Vocabulary: vocabulary, Titles: titles, Table: table, Ordered: ordered}, nil
}

// CountNovels counts the vocabulary in each novel in order. An unreadable
// novel yields nil counts. The context is checked between novels.
func (p *Pipeline) CountNovels(ctx context.Context, novels []Novel, vocabulary []string) ([]map[string]int, error) {
	counts := make([]map[string]int, len(novels))
	for i, n := range novels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		counts[i] = p.countNovel(n, vocabulary)
	}
	return counts, nil
}

func (p *Pipeline) countNovel(n Novel, vocabulary []string) map[string]int {
	doc, err := corpus.ReadNovel(n.Path, n.Title)
	if err != nil {
		p.logger.Error("novel unreadable, treating its frequencies as absent", "path", n.Path, "error", err)
		return nil
	}
	start := time.Now()
	counts := p.counter.Count(doc.Content, vocabulary)
	p.logger.Debug("novel counted", "title", doc.Title, "bytes", len(doc.Content), "elapsed", time.Since(start))
	return counts
}

// Characters returns every vocabulary character ordered by descending peak.
func (r *Result) Characters() []string {
	return frequency.PeakOrder(r.Table)
}

// Records returns the per-novel records of character.
func (r *Result) Records(character string) domain.FrequencyTable {
	return frequency.Filter(r.Table, []string{character})
}

// Selected reports whether character is among the top-changing characters.
func (r *Result) Selected(character string) bool {
	for _, rec := range r.Ordered {
		if rec.Character == character {
			return true
		}
	}
	return false
}
