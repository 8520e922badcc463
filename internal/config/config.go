package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bouncing-balls/internal/physics"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the path to the simulation config file, relative to the process working directory.
const DefaultPath = "config/balls.yaml"

// Config is the on-disk description of a run: which model to build, the arena and its bodies,
// and how the viewer window looks. Field names of the simulation part match physics.Options.
type Config struct {
	Model string `yaml:"model"`

	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Count   int     `yaml:"count"`
	Gravity float64 `yaml:"gravity"`

	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Density   float64 `yaml:"density"`

	Seed                 uint64 `yaml:"seed,omitempty"`
	MaxPlacementAttempts int    `yaml:"max_placement_attempts"`

	Window Window `yaml:"window"`
}

// Window holds viewer-only settings. They do not affect the physics.
type Window struct {
	PixelsPerUnit float32 `yaml:"pixels_per_unit"`
	TargetFPS     int32   `yaml:"target_fps"`
	ShowFPS       bool    `yaml:"show_fps"`
	ShowMemAlloc  bool    `yaml:"show_memalloc"`
	ShowStats     bool    `yaml:"show_stats"`
}

// Default returns the physics model with the engine's default options and a 30 px/unit window at 60 FPS.
func Default() Config {
	c := Config{
		Model: "physics",
		Window: Window{
			PixelsPerUnit: 30,
			TargetFPS:     60,
			ShowFPS:       true,
			ShowStats:     true,
		},
	}
	_ = copier.Copy(&c, physics.DefaultOptions())
	return c
}

// Load reads the config at path on top of Default(), so keys missing from the file keep their
// default values. A missing file is not an error: Default() is returned.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options returns the physics part of c.
func (c Config) Options() (physics.Options, error) {
	var opts physics.Options
	if err := copier.Copy(&opts, &c); err != nil {
		return physics.Options{}, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}
