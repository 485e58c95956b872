// Package config holds the process-wide, immutable engine configuration.
// It is loaded once at startup and injected into the engine; nothing reads
// it through ambient globals.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full engine configuration.
type Config struct {
	Entities EntitiesConfig `yaml:"entities"`
	ML       MLConfig       `yaml:"ml"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// EntitiesConfig carries the extractor defaults that used to be literals.
type EntitiesConfig struct {
	// LowStockThreshold is used when "show low stock items" names no number.
	LowStockThreshold int `yaml:"low_stock_threshold"`

	// TopProductsLimit is the default N for "top products".
	TopProductsLimit int `yaml:"top_products_limit"`

	// TopCustomersLimit is the default N for "top customers".
	TopCustomersLimit int `yaml:"top_customers_limit"`
}

// MLConfig configures the optional statistical intent classifier. The rule
// cascade has no dependency on it; when disabled (or on any error/timeout)
// classification falls through to the rules.
type MLConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`

	// MinConfidence is the acceptance threshold for a model prediction.
	MinConfidence float64 `yaml:"min_confidence"`

	// Timeout bounds a single Predict call.
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration with the engine's stock defaults.
func Default() Config {
	return Config{
		Entities: EntitiesConfig{
			LowStockThreshold: 5,
			TopProductsLimit:  5,
			TopCustomersLimit: 5,
		},
		ML: MLConfig{
			Enabled:       false,
			Model:         "gemini-2.0-flash",
			MinConfidence: 0.7,
			Timeout:       2 * time.Second,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file returns
// the defaults unchanged. Environment variables are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv layers environment overrides on top of file values. The API key
// in particular should not live in config files.
func (c *Config) applyEnv() {
	if key := os.Getenv("VAANI_ML_API_KEY"); key != "" {
		c.ML.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.ML.APIKey = key
	}
	if os.Getenv("VAANI_DEBUG") == "1" {
		c.Logging.Debug = true
	}
}

func (c *Config) validate() error {
	if c.Entities.LowStockThreshold < 0 {
		return fmt.Errorf("entities.low_stock_threshold must be >= 0, got %d", c.Entities.LowStockThreshold)
	}
	if c.Entities.TopProductsLimit <= 0 {
		return fmt.Errorf("entities.top_products_limit must be > 0, got %d", c.Entities.TopProductsLimit)
	}
	if c.Entities.TopCustomersLimit <= 0 {
		return fmt.Errorf("entities.top_customers_limit must be > 0, got %d", c.Entities.TopCustomersLimit)
	}
	if c.ML.MinConfidence < 0 || c.ML.MinConfidence > 1 {
		return fmt.Errorf("ml.min_confidence must be in [0,1], got %v", c.ML.MinConfidence)
	}
	return nil
}
