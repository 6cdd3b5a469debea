package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"negative height", func(c *Config) { c.ScreenHeight = -1 }},
		{"zero fov", func(c *Config) { c.FOVDegrees = 0 }},
		{"full circle fov", func(c *Config) { c.FOVDegrees = 360 }},
		{"zero rays", func(c *Config) { c.NumRays = 0 }},
		{"zero move speed", func(c *Config) { c.MoveSpeed = 0 }},
		{"negative turn speed", func(c *Config) { c.TurnSpeedDegrees = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected a validation error")
			}
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{"num_rays": 120, "fov_degrees": 90}`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.NumRays != 120 {
		t.Errorf("Expected num_rays 120, got %d", cfg.NumRays)
	}
	if cfg.FOVDegrees != 90 {
		t.Errorf("Expected fov_degrees 90, got %v", cfg.FOVDegrees)
	}
	// Untouched fields keep their defaults.
	if cfg.ScreenWidth != Default().ScreenWidth {
		t.Errorf("Expected default screen_width, got %d", cfg.ScreenWidth)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"num_rays": 0}`), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for an invalid config")
	}
}

func TestAngleConversions(t *testing.T) {
	cfg := Default()
	if math.Abs(cfg.FOV()-math.Pi/3) > 1e-9 {
		t.Errorf("Expected FOV π/3, got %v", cfg.FOV())
	}
	if math.Abs(cfg.TurnSpeed()-math.Pi/90) > 1e-9 {
		t.Errorf("Expected turn speed π/90, got %v", cfg.TurnSpeed())
	}
}
