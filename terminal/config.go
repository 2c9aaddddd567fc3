package terminal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the front-end: grid pitch, canvas size, and an optional
// debug log destination (the TUI owns stdout, so logs go to a file).
type Config struct {
	GridPitch    int    `yaml:"grid_pitch"`
	CanvasWidth  int    `yaml:"canvas_width"`
	CanvasHeight int    `yaml:"canvas_height"`
	DebugLog     string `yaml:"debug_log"`
}

func (c *Config) defaults() {
	if c.GridPitch <= 0 {
		c.GridPitch = 1
	}
	if c.CanvasWidth <= 0 {
		c.CanvasWidth = 120
	}
	if c.CanvasHeight <= 0 {
		c.CanvasHeight = 40
	}
}

// LoadConfig reads a YAML config file. An empty path returns defaults; a
// missing file is an error so typos don't silently fall back.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.defaults()
	return cfg, nil
}
