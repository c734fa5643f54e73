package config

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Scene         string  `yaml:"scene"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	FPS           int     `yaml:"fps"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	Background    string  `yaml:"background"` // #rrggbb or #rrggbbaa
	OutDir        string  `yaml:"out_dir"`
	Workers       int     `yaml:"workers"`
	LogLevel      string  `yaml:"log_level"`
	Addr          string  `yaml:"addr"`
	Loop          bool    `yaml:"loop"`
}

// Default returns the settings used when neither flags nor a file set them.
func Default() Config {
	return Config{
		Scene:         "morph",
		Width:         640,
		Height:        360,
		FPS:           30,
		PixelsPerUnit: 80,
		Background:    "#101418",
		OutDir:        "frames",
		Workers:       DefaultWorkers(),
		LogLevel:      "info",
		Addr:          ":8080",
	}
}

// DefaultWorkers returns the number of logical CPUs.
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Merge returns c with every zero field taken from base.
func (c Config) Merge(base Config) Config {
	if c.Scene == "" {
		c.Scene = base.Scene
	}
	if c.Width <= 0 {
		c.Width = base.Width
	}
	if c.Height <= 0 {
		c.Height = base.Height
	}
	if c.FPS <= 0 {
		c.FPS = base.FPS
	}
	if c.PixelsPerUnit <= 0 {
		c.PixelsPerUnit = base.PixelsPerUnit
	}
	if c.Background == "" {
		c.Background = base.Background
	}
	if c.OutDir == "" {
		c.OutDir = base.OutDir
	}
	if c.Workers <= 0 {
		c.Workers = base.Workers
	}
	if c.LogLevel == "" {
		c.LogLevel = base.LogLevel
	}
	if c.Addr == "" {
		c.Addr = base.Addr
	}
	c.Loop = c.Loop || base.Loop
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
