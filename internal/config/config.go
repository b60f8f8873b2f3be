package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxFPS caps the spin frame rate; animated WebP timing is in whole
// milliseconds.
const MaxFPS = 1000

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	SkinDir   string `json:"skin_dir" yaml:"skin_dir"`

	// Surface placement inside the host view, for tap translation
	SurfaceX float64 `json:"surface_x" yaml:"surface_x"`
	SurfaceY float64 `json:"surface_y" yaml:"surface_y"`

	// Render settings
	Width       int `json:"width" yaml:"width"`
	Height      int `json:"height" yaml:"height"`
	Supersample int `json:"supersample" yaml:"supersample"`
	FPS         int `json:"fps" yaml:"fps"`
	Workers     int `json:"workers" yaml:"workers"`
}

// Load reads a JSON or YAML (by extension) config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.SkinDir != "" {
		c.SkinDir = flags.SkinDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 600
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.FPS > MaxFPS {
		c.FPS = MaxFPS
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	SkinDir     string
	Width       int
	Height      int
	Supersample int
	FPS         int
	Workers     int
}
