package main

import (
	"github.com/spf13/cobra"

	"incomelens/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive band selector",
		Long: `Open an interactive terminal shell with two income-bound sliders.
Metrics and curve sketches update live as the bounds move.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := loadModel(cmd)
			if err != nil {
				return err
			}
			return tui.Run(m, cfg.Grid.Max)
		},
	}
}
