package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults jam applies before command-line flags. All
// fields are optional in the YAML file; flags always win over file values.
type Config struct {
	// Rate is the hourly rate in whole currency units.
	Rate float64 `yaml:"rate"`
	// Retainer is the already-paid monthly amount deducted from gross.
	Retainer float64 `yaml:"retainer"`
	// StrictOrder rejects journals whose date headers do not advance
	// chronologically.
	StrictOrder bool `yaml:"strict_order"`
	// ShowIntervals lists each interval beneath its day line.
	ShowIntervals bool `yaml:"show_intervals"`
	// ShowDailyEarnings appends a per-day amount to each day line.
	ShowDailyEarnings bool `yaml:"show_daily_earnings"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		StrictOrder: true,
	}
}

// Load reads the YAML config at path, layered over Default. A missing file
// is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values for sanity.
func (c Config) Validate() error {
	if c.Rate < 0 {
		return fmt.Errorf("rate must not be negative")
	}
	if c.Retainer < 0 {
		return fmt.Errorf("retainer must not be negative")
	}
	return nil
}
