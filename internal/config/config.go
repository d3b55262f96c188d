package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the YAML file unless CONFIG_PATH is set.
const DefaultPath = "configs/config.yaml"

// Config holds the report job configuration.
type Config struct {
	InputPath string `yaml:"input_path"`
	OutputDir string `yaml:"output_dir"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults fill whatever is left unset.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("REPORT_INPUT_PATH"); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv("REPORT_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	// Defaults
	if cfg.InputPath == "" {
		cfg.InputPath = "data/prices.csv"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "reports"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input_path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
