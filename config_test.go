package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TickInterval.Duration != 200*time.Millisecond {
		t.Errorf("TickInterval = %v, want 200ms", cfg.TickInterval.Duration)
	}
	if cfg.FirstYear != 2019 || cfg.LastYear != 2022 {
		t.Errorf("year range = %d..%d", cfg.FirstYear, cfg.LastYear)
	}
	if cfg.Seed != 0 || cfg.Clusters != 2 {
		t.Errorf("seed/clusters = %d/%d", cfg.Seed, cfg.Clusters)
	}

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("absent file should fall back to defaults: %v", err)
	}
	if cfg.Bins != 10 {
		t.Errorf("Bins = %d, want 10", cfg.Bins)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marketscope.toml")
	toml := `
dataset = "companies.csv"
clusters = 3
tick_interval = "1s"
`
	if err := os.WriteFile(path, []byte(toml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dataset != "companies.csv" {
		t.Errorf("Dataset = %q", cfg.Dataset)
	}
	if cfg.Clusters != 3 {
		t.Errorf("Clusters = %d, want 3", cfg.Clusters)
	}
	if cfg.TickInterval.Duration != time.Second {
		t.Errorf("TickInterval = %v, want 1s", cfg.TickInterval.Duration)
	}
	// unset fields keep defaults
	if cfg.Bins != 10 || cfg.FirstYear != 2019 {
		t.Errorf("defaults lost: bins=%d first_year=%d", cfg.Bins, cfg.FirstYear)
	}
}

func TestLoadConfigRejectsInvertedYears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	toml := "first_year = 2022\nlast_year = 2019\n"
	if err := os.WriteFile(path, []byte(toml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for last_year before first_year")
	}
}
