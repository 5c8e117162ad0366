package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"yazz/eval"
)

// Config holds the driver settings read from ~/.yazz.yml.
type Config struct {
	Prompt       string `yaml:"prompt"`
	HistoryFile  string `yaml:"history_file"`
	Banner       bool   `yaml:"banner"`
	MaxCallDepth int    `yaml:"max_call_depth"`
}

func defaultConfig() *Config {
	return &Config{
		Prompt:       "> ",
		HistoryFile:  "",
		Banner:       true,
		MaxCallDepth: eval.DefaultMaxDepth,
	}
}

// configPath returns $YAZZ_CONFIG if set, else ~/.yazz.yml.
func configPath() string {
	if path := os.Getenv("YAZZ_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yazz.yml")
}

// loadConfig reads the config at path over the defaults. A missing
// file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MaxCallDepth < 0 {
		return nil, fmt.Errorf("config: max_call_depth must be non-negative, got %d", cfg.MaxCallDepth)
	}
	if cfg.HistoryFile != "" && cfg.HistoryFile[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.HistoryFile = filepath.Join(home, cfg.HistoryFile[1:])
		}
	}
	return cfg, nil
}
