package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"incomelens/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage incomelens configuration",
		Long: `View and modify incomelens configuration settings.

Configuration is stored in ~/.incomelens/config.yaml.

Examples:
  incomelens config list                  # Show all settings
  incomelens config get model.sigma       # Get a specific setting
  incomelens config set model.sigma 1.05  # Set a setting`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(cfg)
			}

			fmt.Println("Configuration (~/.incomelens/config.yaml):")
			fmt.Println()
			fmt.Println("Model:")
			fmt.Printf("  model.mu:          %v\n", cfg.Model.Mu)
			fmt.Printf("  model.sigma:       %v\n", cfg.Model.Sigma)
			fmt.Printf("  model.population:  %d\n", cfg.Model.Population)
			fmt.Println()
			fmt.Println("Display grid:")
			fmt.Printf("  grid.max:          %v\n", cfg.Grid.Max)
			fmt.Printf("  grid.points:       %d\n", cfg.Grid.Points)
			fmt.Println()
			fmt.Println("Charts:")
			fmt.Printf("  chart.width:       %d\n", cfg.Chart.Width)
			fmt.Printf("  chart.height:      %d\n", cfg.Chart.Height)
			fmt.Printf("  chart.format:      %s\n", cfg.Chart.Format)
			fmt.Println()
			fmt.Println("Logging:")
			fmt.Printf("  logging.level:     %s\n", cfg.Logging.Level)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			value, err := getConfigValue(cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				// A missing file starts from defaults.
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				cfg = config.Default()
			}

			if err := setConfigValue(cfg, args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// getConfigValue resolves a dotted key against the config.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "model.mu":
		return strconv.FormatFloat(cfg.Model.Mu, 'g', -1, 64), nil
	case "model.sigma":
		return strconv.FormatFloat(cfg.Model.Sigma, 'g', -1, 64), nil
	case "model.population":
		return strconv.FormatInt(cfg.Model.Population, 10), nil
	case "grid.max":
		return strconv.FormatFloat(cfg.Grid.Max, 'g', -1, 64), nil
	case "grid.points":
		return strconv.Itoa(cfg.Grid.Points), nil
	case "chart.width":
		return strconv.Itoa(cfg.Chart.Width), nil
	case "chart.height":
		return strconv.Itoa(cfg.Chart.Height), nil
	case "chart.format":
		return cfg.Chart.Format, nil
	case "logging.level":
		return cfg.Logging.Level, nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

// setConfigValue assigns a dotted key on the config, parsing value to
// the field's type.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "model.mu", "model.sigma", "grid.max":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", key, value)
		}
		switch key {
		case "model.mu":
			cfg.Model.Mu = f
		case "model.sigma":
			cfg.Model.Sigma = f
		case "grid.max":
			cfg.Grid.Max = f
		}
		return nil
	case "model.population":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		cfg.Model.Population = n
		return nil
	case "grid.points", "chart.width", "chart.height":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, value)
		}
		switch key {
		case "grid.points":
			cfg.Grid.Points = n
		case "chart.width":
			cfg.Chart.Width = n
		case "chart.height":
			cfg.Chart.Height = n
		}
		return nil
	case "chart.format":
		cfg.Chart.Format = value
		return nil
	case "logging.level":
		cfg.Logging.Level = value
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}
