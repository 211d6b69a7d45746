package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Novel pairs a novel text file with its display title.
type Novel struct {
	Path  string `yaml:"path" validate:"required"`
	Title string `yaml:"title" validate:"required"`
}

// OutputConfig controls where and how the chart and table are written.
type OutputConfig struct {
	Path         string  `yaml:"path" validate:"required"`
	DPI          float64 `yaml:"dpi" validate:"gt=0"`
	WidthInches  float64 `yaml:"width_inches" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" validate:"gt=0"`
	CSVPath      string  `yaml:"csv_path,omitempty"`
}

// ChartConfig holds the explicit styling of the rendered chart.
type ChartConfig struct {
	Title       string  `yaml:"title"`
	XLabel      string  `yaml:"x_label"`
	YLabel      string  `yaml:"y_label"`
	LegendTitle string  `yaml:"legend_title"`
	Theme       string  `yaml:"theme" validate:"oneof=whitegrid white"`
	Palette     string  `yaml:"palette" validate:"oneof=tab10 dark"`
	LineWidth   float64 `yaml:"line_width" validate:"gt=0"`
	Markers     bool    `yaml:"markers"`
}

// LoggingConfig selects log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Vocabulary string        `yaml:"vocabulary" validate:"required"`
	Novels     []Novel       `yaml:"novels" validate:"required,min=1,dive"`
	Tokenizer  string        `yaml:"tokenizer" validate:"oneof=treebank words"`
	TopN       int           `yaml:"top_n" validate:"min=1"`
	Output     OutputConfig  `yaml:"output"`
	Chart      ChartConfig   `yaml:"chart"`
	Logging    LoggingConfig `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./charfreq.yaml first, then ~/.config/charfreq/config.yaml.
// If neither exists the built-in defaults are returned with an empty path.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "charfreq.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := DefaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	return Default(), "", nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *AppConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// ApplyEnv overrides config values from CHARFREQ_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if v := os.Getenv("CHARFREQ_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CHARFREQ_TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CHARFREQ_TOP_N: %w", err)
		}
		cfg.TopN = n
	}
	return nil
}

// DefaultUserConfigPath returns ~/.config/charfreq/config.yaml.
func DefaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "charfreq", "config.yaml"), nil
}
