package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"charfreq/internal/chart"
	"charfreq/internal/config"
	"charfreq/internal/counter"
	"charfreq/internal/domain"
	"charfreq/internal/export"
	"charfreq/internal/service"
	"charfreq/internal/tokenize"
)

type runFlags struct {
	topN    int
	output  string
	csvPath string
	quiet   bool
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Count characters in every novel and write the frequency chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := config.Validate(cfg); err != nil {
				return err
			}
			logger, err := ctx.logger(flags.quiet)
			if err != nil {
				return err
			}

			pipeline, err := assemble(cfg, logger, true)
			if err != nil {
				return err
			}
			res, err := pipeline.Run(cmd.Context(), cfg.Vocabulary, novels(cfg))
			if err != nil {
				return err
			}
			logger.Info("chart written", "path", cfg.Output.Path, "dpi", cfg.Output.DPI)

			if cfg.Output.CSVPath != "" {
				if err := export.WriteCSVFile(cfg.Output.CSVPath, res.Ordered); err != nil {
					return err
				}
				logger.Info("table written", "path", cfg.Output.CSVPath)
			}
			if !flags.quiet {
				fmt.Fprintln(cmd.OutOrStdout(), renderFrequencyTable(res.Ordered, res.Titles))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&flags.topN, "top-n", "n", 0, "Number of top-changing characters to plot (overrides config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Chart output path; .png, .jpg, .tiff, .svg or .pdf (overrides config)")
	cmd.Flags().StringVar(&flags.csvPath, "csv", "", "Also write the selected records as CSV to this path")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress logs and the summary table")
	return cmd
}

func (f runFlags) apply(cmd *cobra.Command, cfg *config.AppConfig) {
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = f.topN
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = f.output
	}
	if cmd.Flags().Changed("csv") {
		cfg.Output.CSVPath = f.csvPath
	}
}

// assemble builds the pipeline from config. The chart renderer is only wired
// when withChart is set.
func assemble(cfg *config.AppConfig, logger *slog.Logger, withChart bool) (*service.Pipeline, error) {
	var tok domain.Tokenizer
	switch cfg.Tokenizer {
	case "treebank", "":
		tok = tokenize.NewTreebank()
	case "words":
		tok = tokenize.NewWords()
	default:
		return nil, fmt.Errorf("unknown tokenizer: %s", cfg.Tokenizer)
	}

	var renderer domain.Renderer
	if withChart {
		renderer = chart.New(chart.Options{
			Path:         cfg.Output.Path,
			DPI:          cfg.Output.DPI,
			WidthInches:  cfg.Output.WidthInches,
			HeightInches: cfg.Output.HeightInches,
			Title:        cfg.Chart.Title,
			XLabel:       cfg.Chart.XLabel,
			YLabel:       cfg.Chart.YLabel,
			LegendTitle:  cfg.Chart.LegendTitle,
			Theme:        cfg.Chart.Theme,
			Palette:      cfg.Chart.Palette,
			LineWidth:    cfg.Chart.LineWidth,
			Markers:      cfg.Chart.Markers,
		})
	}
	logger.Debug("pipeline assembled", "tokenizer", tok.Name(), "top_n", cfg.TopN, "chart", withChart)
	return service.NewPipeline(counter.NewFrequencyCounter(tok), renderer, logger, cfg.TopN), nil
}

func novels(cfg *config.AppConfig) []service.Novel {
	out := make([]service.Novel, len(cfg.Novels))
	for i, n := range cfg.Novels {
		out[i] = service.Novel{Path: n.Path, Title: n.Title}
	}
	return out
}
