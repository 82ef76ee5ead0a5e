package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config is read from render.toml in the working directory. Missing keys
// keep their defaults.
type config struct {
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Title      string     `toml:"title"`
	VSync      bool       `toml:"vsync"`
	Grid       int        `toml:"grid"`
	ClearColor [4]float32 `toml:"clear_color"`
	Verbose    bool       `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Width:      800,
		Height:     600,
		Title:      "render example",
		VSync:      true,
		Grid:       8,
		ClearColor: [4]float32{0.12, 0.12, 0.14, 1},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Grid < 1 {
		cfg.Grid = 1
	}
	return cfg, nil
}
