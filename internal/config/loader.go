package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid drone config")

// LoadDrone loads the drone configuration.
// Search order: customPath -> ~/.fpvneon/configs/drone.yaml -> ./configs/drone.yaml -> embedded default
func LoadDrone(customPath string) (DroneConfig, error) {
	// Try custom path first; failures here are fatal for the caller
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DroneConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseDrone(data)
		if err != nil {
			return DroneConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("drone.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDrone(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "drone.yaml")); err == nil {
		if cfg, err := ParseDrone(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDrone(defaultDroneYAML)
	if err != nil {
		return DefaultDroneConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDrone decodes a YAML document on top of the hardcoded defaults,
// so partial files only override what they mention.
func ParseDrone(data []byte) (DroneConfig, error) {
	cfg := DefaultDroneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DroneConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DroneConfig{}, err
	}
	return cfg, nil
}

// Validate checks the preconditions the simulation relies on.
func (c DroneConfig) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if 2*c.Drone.MarginY >= c.Canvas.Height {
		return fmt.Errorf("%w: margin_y %g leaves no play field", ErrInvalidConfig, c.Drone.MarginY)
	}
	if c.Obstacles.MaxSize < c.Obstacles.MinSize {
		return fmt.Errorf("%w: obstacle size range [%g, %g]", ErrInvalidConfig, c.Obstacles.MinSize, c.Obstacles.MaxSize)
	}
	if len(c.Difficulty.Profiles) == 0 {
		return fmt.Errorf("%w: no difficulty profiles", ErrInvalidConfig)
	}
	if _, ok := c.Difficulty.Profiles[c.Difficulty.Default]; !ok {
		return fmt.Errorf("%w: default difficulty %q has no profile", ErrInvalidConfig, c.Difficulty.Default)
	}
	for label, p := range c.Difficulty.Profiles {
		if p.MaxThrust < p.MinThrust {
			return fmt.Errorf("%w: profile %q thrust range [%g, %g]", ErrInvalidConfig, label, p.MinThrust, p.MaxThrust)
		}
		if p.CampThreshold <= 0 {
			return fmt.Errorf("%w: profile %q camp_threshold must be positive", ErrInvalidConfig, label)
		}
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fpvneon", "configs", filename)
}
