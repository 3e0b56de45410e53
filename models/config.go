// Package models defines data structures shared across the miner:
// runtime configuration and the records flowing through the pipeline.
package models

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for a mining run. Values come from an
// optional config.yaml, overridden by CLI flags. Unknown keys are rejected so
// typos fail loudly instead of being silently ignored.
type Config struct {
	Workers       int    `yaml:"workers"`
	CacheMemoryMB int    `yaml:"cache_memory_mb"`
	MmapSizeMB    int    `yaml:"mmap_size_mb"`
	Stopwords     string `yaml:"stopwords"`
	Font          string `yaml:"font"`
	OutputDir     string `yaml:"output_dir"`
}

// DefaultConfig returns a Config with working defaults for a laptop-sized run.
func DefaultConfig() Config {
	return Config{
		Workers:       4,
		CacheMemoryMB: 64,
		MmapSizeMB:    256,
		OutputDir:     "results",
	}
}

// LoadConfig reads a YAML config file, layering it over DefaultConfig.
// A missing file is not an error; defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	return cfg, nil
}
