package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"charfreq/internal/config"
	"charfreq/internal/logging"
)

type commandContext struct {
	configFlag *string
	// logWriter defaults to stderr.
	logWriter io.Writer

	configOnce sync.Once
	config     *config.AppConfig
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig resolves the config from --config, CHARFREQ_CONFIG or the
// default search locations, then applies environment overrides.
func (c *commandContext) ensureConfig() (*config.AppConfig, error) {
	c.configOnce.Do(func() {
		path := ""
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			path = strings.TrimSpace(os.Getenv("CHARFREQ_CONFIG"))
		}

		var cfg *config.AppConfig
		var err error
		if path == "" {
			cfg, path, err = config.LoadDefault()
		} else {
			cfg, err = config.Load(path)
		}
		if err != nil {
			c.configErr = fmt.Errorf("failed to load config: %w", err)
			return
		}
		if err := config.ApplyEnv(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(quiet bool) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if quiet {
		// Per-novel read failures are still reported.
		level = "error"
	}
	return logging.New(logging.Options{Level: level, Format: cfg.Logging.Format, Writer: c.logWriter})
}
