package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences read from config.yaml.
type Config struct {
	Theme          string        `yaml:"theme"`
	DefaultPattern string        `yaml:"default_pattern"`
	Volume         int           `yaml:"volume"`
	FrameInterval  time.Duration `yaml:"frame_interval"`
	CatalogFile    string        `yaml:"catalog_file"`
	DataDir        string        `yaml:"data_dir"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:          "default",
		DefaultPattern: "box",
		Volume:         DefaultVolume,
		FrameInterval:  FrameInterval,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 100 {
		c.Volume = 100
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = FrameInterval
	}
	if c.Theme == "" {
		c.Theme = "default"
	}
}
