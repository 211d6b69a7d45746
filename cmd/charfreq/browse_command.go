package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"charfreq/internal/config"
	"charfreq/internal/tui"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse per-novel character frequencies interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			logger, err := ctx.logger(false)
			if err != nil {
				return err
			}
			pipeline, err := assemble(cfg, logger, false)
			if err != nil {
				return err
			}
			res, err := pipeline.Build(cmd.Context(), cfg.Vocabulary, novels(cfg))
			if err != nil {
				return err
			}

			summary := fmt.Sprintf("%d characters across %d novels, top %d by change marked",
				len(res.Vocabulary), len(res.Titles), cfg.TopN)
			p := tea.NewProgram(tui.New(res, summary), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}
