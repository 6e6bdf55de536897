package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"incomelens/internal/income"
	"incomelens/internal/logging"
	"incomelens/internal/render"
)

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the density and cumulative charts to files",
		Long: `Render the income density curve and the cumulative distribution
curve as image files, highlighting the selected band.

Examples:
  incomelens chart --out ./charts
  incomelens chart --min 40000 --max 100000 --format svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			low, _ := cmd.Flags().GetFloat64("min")
			high, _ := cmd.Flags().GetFloat64("max")

			m, cfg, err := loadModel(cmd)
			if err != nil {
				return err
			}
			logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)

			// Validate the band before rendering anything.
			if _, err := m.Band(low, high); err != nil {
				return err
			}
			band := &render.Band{Low: low, High: high}

			opts := render.Options{
				Width:  cfg.Chart.Width,
				Height: cfg.Chart.Height,
				Format: render.Format(cfg.Chart.Format),
			}
			if w, _ := cmd.Flags().GetInt("width"); w > 0 {
				opts.Width = w
			}
			if h, _ := cmd.Flags().GetInt("height"); h > 0 {
				opts.Height = h
			}
			if f, _ := cmd.Flags().GetString("format"); f != "" {
				opts.Format = render.Format(f)
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			grid := income.Grid(cfg.Grid.Max, cfg.Grid.Points)

			charts := []struct {
				name   string
				render func() ([]byte, error)
			}{
				{"density", func() ([]byte, error) { return render.Density(m, grid, band, opts) }},
				{"cumulative", func() ([]byte, error) { return render.Cumulative(m, grid, band, opts) }},
			}

			for _, c := range charts {
				data, err := c.render()
				if err != nil {
					return fmt.Errorf("rendering %s chart: %w", c.name, err)
				}
				ext := opts.Format.Ext()
				if ext == "" {
					ext = "png"
				}
				path := filepath.Join(outDir, c.name+"."+ext)
				if err := os.WriteFile(path, data, 0644); err != nil {
					return fmt.Errorf("writing %s chart: %w", c.name, err)
				}
				logger.Debug("wrote chart", "path", path, "bytes", len(data))
				fmt.Println(path)
			}
			return nil
		},
	}

	cmd.Flags().String("out", ".", "Output directory")
	cmd.Flags().Float64("min", 25_000, "Lower band bound ($)")
	cmd.Flags().Float64("max", 100_000, "Upper band bound ($)")
	cmd.Flags().Int("width", 0, "Chart width in pixels (default from config)")
	cmd.Flags().Int("height", 0, "Chart height in pixels (default from config)")
	cmd.Flags().String("format", "", "Output format: png or svg (default from config)")
	return cmd
}
