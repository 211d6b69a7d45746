package config

// Default returns the built-in configuration: the first four Harry Potter
// novels, a "characters" vocabulary file and a 300 dpi PNG chart.
func Default() *AppConfig {
	return &AppConfig{
		Vocabulary: "characters",
		Novels: []Novel{
			{Path: "J. K. Rowling - Harry Potter 1 - Sorcerer's Stone.txt", Title: "Sorcerer's Stone"},
			{Path: "J. K. Rowling - Harry Potter 2 - The Chamber Of Secrets.txt", Title: "Chamber of Secrets"},
			{Path: "J. K. Rowling - Harry Potter 3 - Prisoner of Azkaban.txt", Title: "Prisoner of Azkaban"},
			{Path: "J. K. Rowling - Harry Potter 4 - The Goblet of Fire.txt", Title: "Goblet of Fire"},
		},
		Tokenizer: "treebank",
		TopN:      10,
		Output: OutputConfig{
			Path:         "ordered_character_frequency_lineplot_log_scale.png",
			DPI:          300,
			WidthInches:  12,
			HeightInches: 8,
		},
		Chart: ChartConfig{
			Title:       "Character Appearance Frequency Across Harry Potter Novels",
			XLabel:      "Novel Titles",
			YLabel:      "Number of Appearances (Log Scale)",
			LegendTitle: "Characters",
			Theme:       "whitegrid",
			Palette:     "tab10",
			LineWidth:   2,
			Markers:     true,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Vocabulary == "" {
		cfg.Vocabulary = def.Vocabulary
	}
	if len(cfg.Novels) == 0 {
		cfg.Novels = def.Novels
	}
	if cfg.Tokenizer == "" {
		cfg.Tokenizer = def.Tokenizer
	}
	if cfg.TopN == 0 {
		cfg.TopN = def.TopN
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = def.Output.Path
	}
	if cfg.Output.DPI == 0 {
		cfg.Output.DPI = def.Output.DPI
	}
	if cfg.Output.WidthInches == 0 {
		cfg.Output.WidthInches = def.Output.WidthInches
	}
	if cfg.Output.HeightInches == 0 {
		cfg.Output.HeightInches = def.Output.HeightInches
	}
	if cfg.Chart.Title == "" {
		cfg.Chart.Title = def.Chart.Title
	}
	if cfg.Chart.XLabel == "" {
		cfg.Chart.XLabel = def.Chart.XLabel
	}
	if cfg.Chart.YLabel == "" {
		cfg.Chart.YLabel = def.Chart.YLabel
	}
	if cfg.Chart.LegendTitle == "" {
		cfg.Chart.LegendTitle = def.Chart.LegendTitle
	}
	if cfg.Chart.Theme == "" {
		cfg.Chart.Theme = def.Chart.Theme
	}
	if cfg.Chart.Palette == "" {
		cfg.Chart.Palette = def.Chart.Palette
	}
	if cfg.Chart.LineWidth == 0 {
		cfg.Chart.LineWidth = def.Chart.LineWidth
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
}
