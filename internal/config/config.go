// Package config provides YAML-based game configuration loading and
// difficulty profile management for FPV Neon.
package config

// DroneConfig contains all tuning for the drone runner.
type DroneConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Drone      DroneBody        `yaml:"drone"`
	Physics    DronePhysics     `yaml:"physics"`
	Obstacles  DroneObstacles   `yaml:"obstacles"`
	AntiCamp   AntiCampConfig   `yaml:"anti_camp"`
	Dust       DustConfig       `yaml:"dust"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig is the size of the raster surface in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DroneBody defines the drone's starting kinematics.
type DroneBody struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Size     float64 `yaml:"size"` // Collision radius proxy
	Friction float64 `yaml:"friction"`
	MarginY  float64 `yaml:"margin_y"` // y is clamped to [margin, height-margin]
}

// DronePhysics defines per-tick rates and the time scaling of the session.
type DronePhysics struct {
	ThrustUpRate        float64 `yaml:"thrust_up_rate"`
	ThrustDownRate      float64 `yaml:"thrust_down_rate"`
	TargetXBase         float64 `yaml:"target_x_base"`
	TargetXPerThrust    float64 `yaml:"target_x_per_thrust"`
	Smoothing           float64 `yaml:"smoothing"`
	ScrollBase          float64 `yaml:"scroll_base"`
	ScrollPerThrust     float64 `yaml:"scroll_per_thrust"`
	AccPerMinute        float64 `yaml:"acc_per_minute"`
	MinThrustPerMinute  float64 `yaml:"min_thrust_per_minute"`
	MaxThrustPerMinute  float64 `yaml:"max_thrust_per_minute"`
	SpawnDecayPerMinute float64 `yaml:"spawn_decay_per_minute"`
	MinSpawnInterval    float64 `yaml:"min_spawn_interval"` // Floor of the pixel gap between spawns
}

// DroneObstacles defines obstacle spawning ranges.
type DroneObstacles struct {
	SpawnOffset float64 `yaml:"spawn_offset"` // Spawn x = width + offset
	DespawnX    float64 `yaml:"despawn_x"`    // Removed once x < despawn_x
	SafeBand    float64 `yaml:"safe_band"`    // Random y in [band, height-band)
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	MaxRotSpeed float64 `yaml:"max_rot_speed"`
	HueMin      float64 `yaml:"hue_min"`
	HueMax      float64 `yaml:"hue_max"`
	HitFactor   float64 `yaml:"hit_factor"` // Share of obstacle size counted for collision
}

// AntiCampConfig defines stagnation detection.
type AntiCampConfig struct {
	StillThreshold      float64 `yaml:"still_threshold"` // |dy| below this counts as still
	WarnFraction        float64 `yaml:"warn_fraction"`
	WarnFractionHardest float64 `yaml:"warn_fraction_hardest"`
}

// DustConfig defines the decorative particle field.
type DustConfig struct {
	Count      int     `yaml:"count"`
	MinDepth   float64 `yaml:"min_depth"`
	MaxDepth   float64 `yaml:"max_depth"`
	MinOpacity float64 `yaml:"min_opacity"`
	MaxOpacity float64 `yaml:"max_opacity"`
	Parallax   float64 `yaml:"parallax"`
}

// DisplayConfig defines how readouts are derived from state.
type DisplayConfig struct {
	SpeedBase      float64 `yaml:"speed_base"`
	SpeedPerThrust float64 `yaml:"speed_per_thrust"`
	AltitudeRef    float64 `yaml:"altitude_ref"`
	AltitudeScale  float64 `yaml:"altitude_scale"`
}

// DifficultyConfig holds the load-time defaults and the named profiles.
type DifficultyConfig struct {
	Default  DifficultyLabel             `yaml:"default"`
	Hardest  DifficultyLabel             `yaml:"hardest"`
	Initial  Profile                     `yaml:"initial"` // Values before any profile is applied
	Profiles map[DifficultyLabel]Profile `yaml:"profiles"`
}

// Profile is the immutable bundle of constants a difficulty applies on start.
type Profile struct {
	MinThrust     float64 `yaml:"min_thrust"`
	MaxThrust     float64 `yaml:"max_thrust"`
	SpawnRate     float64 `yaml:"spawn_rate"`
	BaseAcc       float64 `yaml:"base_acc"`
	CampThreshold int     `yaml:"camp_threshold"` // Ticks of stagnation before a forced spawn
}
