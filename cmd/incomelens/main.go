package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"incomelens/internal/config"
	"incomelens/internal/income"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "incomelens",
		Short: "Log-normal calculator for Canadian personal income",
		Long: `incomelens models Canadian personal income as a log-normal
distribution and reports how much of the population earns within a
selected income band.

The model is fixed at startup (log-income mean, log-income standard
deviation, reference population); every query is a pure function of
those constants and the supplied bounds.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.incomelens/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newBandCmd(),
		newSummaryCmd(),
		newTableCmd(),
		newChartCmd(),
		newSampleCmd(),
		newConfigCmd(),
		newTUICmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("incomelens version %s\n", version)
			}
		},
	}
}

// loadConfig reads the config named by the global --config flag, or the
// default location when unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadModel builds the income model from configuration.
func loadModel(cmd *cobra.Command) (*income.Model, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	m, err := income.New(cfg.Model.Params())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build model: %w", err)
	}
	return m, cfg, nil
}
