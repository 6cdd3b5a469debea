// Package config provides the viewer configuration for the raycaster.
// Settings are loaded from a JSON file over the defaults so a demo can tune
// the fan density and movement feel without recompiling.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Config holds all tunable viewer settings.
type Config struct {
	ScreenWidth  int `json:"screen_width"`  // Total window width; the map and scene panes each take half
	ScreenHeight int `json:"screen_height"` // Window height

	FOVDegrees float64 `json:"fov_degrees"` // Horizontal field of view
	NumRays    int     `json:"num_rays"`    // Rays per frame, one column each

	MoveSpeed        float64 `json:"move_speed"`         // Units moved per tick while a move key is held
	TurnSpeedDegrees float64 `json:"turn_speed_degrees"` // Degrees turned per tick while a turn key is held

	Fisheye bool `json:"fisheye"` // Start with raw radial distances instead of corrected ones
}

// Default returns the demo configuration.
func Default() Config {
	return Config{
		ScreenWidth:      1200,
		ScreenHeight:     600,
		FOVDegrees:       60,
		NumRays:          50,
		MoveSpeed:        2,
		TurnSpeedDegrees: 2,
		Fisheye:          false,
	}
}

// Load reads a config file and applies it over the defaults, so a file only
// needs to mention the fields it changes.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field can drive the core without failing
// construction downstream.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 360 {
		return fmt.Errorf("fov_degrees must be in (0, 360), got %v", c.FOVDegrees)
	}
	if c.NumRays < 1 {
		return fmt.Errorf("num_rays must be at least 1, got %d", c.NumRays)
	}
	if c.MoveSpeed <= 0 {
		return fmt.Errorf("move_speed must be positive, got %v", c.MoveSpeed)
	}
	if c.TurnSpeedDegrees <= 0 {
		return fmt.Errorf("turn_speed_degrees must be positive, got %v", c.TurnSpeedDegrees)
	}
	return nil
}

// FOV returns the field of view in radians.
func (c Config) FOV() float64 {
	return c.FOVDegrees * math.Pi / 180
}

// TurnSpeed returns the per-tick rotation in radians.
func (c Config) TurnSpeed() float64 {
	return c.TurnSpeedDegrees * math.Pi / 180
}
