package config

import (
	_ "embed"
)

//go:embed defaults/drone.yaml
var defaultDroneYAML []byte

// DefaultDroneConfig returns the hardcoded drone configuration.
// It mirrors defaults/drone.yaml and is the last fallback of the loader.
func DefaultDroneConfig() DroneConfig {
	return DroneConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Drone: DroneBody{
			X:        150,
			Y:        300,
			Size:     18,
			Friction: 0.94,
			MarginY:  40,
		},
		Physics: DronePhysics{
			ThrustUpRate:        0.12,
			ThrustDownRate:      0.15,
			TargetXBase:         120,
			TargetXPerThrust:    10,
			Smoothing:           0.05,
			ScrollBase:          1.5,
			ScrollPerThrust:     1.4,
			AccPerMinute:        0.04,
			MinThrustPerMinute:  0.8,
			MaxThrustPerMinute:  1.2,
			SpawnDecayPerMinute: 1.0,
			MinSpawnInterval:    15,
		},
		Obstacles: DroneObstacles{
			SpawnOffset: 200,
			DespawnX:    -200,
			SafeBand:    75,
			MinSize:     35,
			MaxSize:     90,
			MaxRotSpeed: 0.05,
			HueMin:      100,
			HueMax:      160,
			HitFactor:   0.4,
		},
		AntiCamp: AntiCampConfig{
			StillThreshold:      2,
			WarnFraction:        0.6,
			WarnFractionHardest: 0.3,
		},
		Dust: DustConfig{
			Count:      80,
			MinDepth:   1,
			MaxDepth:   4,
			MinOpacity: 0.2,
			MaxOpacity: 0.7,
			Parallax:   0.5,
		},
		Display: DisplayConfig{
			SpeedBase:      10,
			SpeedPerThrust: 15,
			AltitudeRef:    600,
			AltitudeScale:  5,
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyNormal,
			Hardest: DifficultyImpossible,
			Initial: Profile{MinThrust: 1, MaxThrust: 12, SpawnRate: 150, BaseAcc: 0.25, CampThreshold: 180},
			Profiles: map[DifficultyLabel]Profile{
				DifficultyEasy:       {MinThrust: 1, MaxThrust: 4, SpawnRate: 160, BaseAcc: 0.2, CampThreshold: 240},
				DifficultyNormal:     {MinThrust: 2, MaxThrust: 7, SpawnRate: 100, BaseAcc: 0.35, CampThreshold: 180},
				DifficultyHard:       {MinThrust: 3, MaxThrust: 10, SpawnRate: 60, BaseAcc: 0.5, CampThreshold: 120},
				DifficultyImpossible: {MinThrust: 5, MaxThrust: 15, SpawnRate: 30, BaseAcc: 0.7, CampThreshold: 60},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultDroneYAML
}
