// Package config provides unified configuration loading for incomelens.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"incomelens/internal/income"
)

// Config contains all incomelens configuration settings.
type Config struct {
	// Model contains the distribution parameters.
	Model ModelConfig `json:"model" yaml:"model"`

	// Grid contains the display-grid settings used for charting.
	Grid GridConfig `json:"grid" yaml:"grid"`

	// Chart contains the rendered-chart settings.
	Chart ChartConfig `json:"chart" yaml:"chart"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ModelConfig configures the log-normal income distribution.
type ModelConfig struct {
	// Mu is the mean of log income.
	Mu float64 `json:"mu" yaml:"mu"`

	// Sigma is the standard deviation of log income. Must be positive.
	Sigma float64 `json:"sigma" yaml:"sigma"`

	// Population is the reference head count probabilities scale to.
	Population int64 `json:"population" yaml:"population"`
}

// Params converts the configured values to model parameters.
func (c ModelConfig) Params() income.Params {
	return income.Params{Mu: c.Mu, Sigma: c.Sigma, Population: c.Population}
}

// GridConfig configures the display grid the charts sample over.
type GridConfig struct {
	// Max is the right edge of the grid in dollars.
	Max float64 `json:"max" yaml:"max"`

	// Points is the number of grid samples.
	Points int `json:"points" yaml:"points"`
}

// ChartConfig configures rendered chart output.
type ChartConfig struct {
	// Width and Height are the chart dimensions in pixels.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Format is the output format: "png" (default) or "svg".
	Format string `json:"format" yaml:"format"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default) or "debug".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the Canadian income model defaults.
func Default() *Config {
	return &Config{
		Model: ModelConfig{
			Mu:         income.DefaultMu,
			Sigma:      income.DefaultSigma,
			Population: income.DefaultPopulation,
		},
		Grid: GridConfig{
			Max:    income.DefaultGridMax,
			Points: income.DefaultGridPoints,
		},
		Chart: ChartConfig{
			Width:  800,
			Height: 500,
			Format: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.incomelens/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(homeDir, ".incomelens", "config.yaml"), nil
}

// Load loads configuration from path, or from the default location when
// path is empty. A missing default file is not an error.
// Order: defaults -> file -> environment variables.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		defaultPath, err := DefaultPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				path = defaultPath
			}
		}
	}

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Save writes the configuration to path as YAML, creating parent
// directories as needed.
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Model.Params().Validate(); err != nil {
		return err
	}

	if c.Grid.Max <= 0 {
		return fmt.Errorf("grid max must be positive, got %v", c.Grid.Max)
	}
	if c.Grid.Points < 2 {
		return fmt.Errorf("grid points must be at least 2, got %d", c.Grid.Points)
	}

	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	validFormats := map[string]bool{"": true, "png": true, "svg": true}
	if !validFormats[c.Chart.Format] {
		return fmt.Errorf("invalid chart format: %s (valid: png, svg, or empty for default)", c.Chart.Format)
	}

	validLevels := map[string]bool{"": true, "info": true, "debug": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("INCOMELENS_MU"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Model.Mu = f
		}
	}

	if v := os.Getenv("INCOMELENS_SIGMA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Model.Sigma = f
		}
	}

	if v := os.Getenv("INCOMELENS_POPULATION"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Model.Population = n
		}
	}

	if v := os.Getenv("INCOMELENS_GRID_MAX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Grid.Max = f
		}
	}

	if v := os.Getenv("INCOMELENS_GRID_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Grid.Points = n
		}
	}

	if v := os.Getenv("INCOMELENS_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
