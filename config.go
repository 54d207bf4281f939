package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"chessmoves/board"
)

const defaultConfigFile = "chessmoves.yaml"

type config struct {
	// Rows and Files size book positions that give neither a placement nor dimensions.
	Rows       int    `yaml:"rows"`
	Files      int    `yaml:"files"`
	Workers    int    `yaml:"workers"`
	Verify     bool   `yaml:"verify"`
	SVGDir     string `yaml:"svg_dir"`
	SquareSize int    `yaml:"square_size"`
}

func defaultConfig() config {
	return config{
		Rows:       board.DefaultRows,
		Files:      board.DefaultFiles,
		SquareSize: 48,
	}
}

// loadConfig reads filename over the defaults. A missing default file is not
// an error; a missing file the user named is.
func loadConfig(filename string, explicit bool) (config, error) {
	cfg := defaultConfig()

	b, err := os.ReadFile(filename)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return config{}, fmt.Errorf("'%s': %v", filename, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return config{}, fmt.Errorf("'%s': %v", filename, err)
	}

	if _, err := board.New(cfg.Rows, cfg.Files); err != nil {
		return config{}, fmt.Errorf("'%s': %w", filename, err)
	}
	if cfg.Workers < 0 {
		return config{}, fmt.Errorf("'%s': workers must not be negative", filename)
	}
	if cfg.SquareSize <= 0 {
		return config{}, fmt.Errorf("'%s': square_size must be positive", filename)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
