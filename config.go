package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the app configuration, loaded from a TOML file when one exists.
// Everything has a working default so the binary runs with just a dataset
// argument.
type Config struct {
	// Dataset is the CSV to load when no positional argument is given.
	Dataset string `toml:"dataset"`

	// Bins is the fixed bin count for numeric feature histograms.
	Bins int `toml:"bins"`
	// Clusters is k for the embedding's k-means pass.
	Clusters int `toml:"clusters"`
	// Seed makes the clustering reproducible between runs.
	Seed int64 `toml:"seed"`

	// FirstYear and LastYear bound the cyclic animation range.
	FirstYear int `toml:"first_year"`
	LastYear  int `toml:"last_year"`

	// TickInterval is the animation period.
	TickInterval Duration `toml:"tick_interval"`

	// SliderSteps is how many notches the market-cap slider divides its
	// range into.
	SliderSteps int `toml:"slider_steps"`
}

// Duration wraps time.Duration for TOML text encoding ("200ms", "1s").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func DefaultConfig() Config {
	return Config{
		Bins:         10,
		Clusters:     2,
		Seed:         0,
		FirstYear:    2019,
		LastYear:     2022,
		TickInterval: Duration{200 * time.Millisecond},
		SliderSteps:  40,
	}
}

// LoadConfig reads the TOML config, falling back to defaults when the file
// does not exist. Partial files are fine; unset fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Bins <= 0 {
		cfg.Bins = 10
	}
	if cfg.Clusters <= 0 {
		cfg.Clusters = 2
	}
	if cfg.LastYear < cfg.FirstYear {
		return cfg, fmt.Errorf("config: last_year %d before first_year %d", cfg.LastYear, cfg.FirstYear)
	}
	if cfg.TickInterval.Duration <= 0 {
		cfg.TickInterval = Duration{200 * time.Millisecond}
	}
	if cfg.SliderSteps <= 0 {
		cfg.SliderSteps = 40
	}
	return cfg, nil
}
