package drone

import (
	"time"

	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

// Drone is the player's craft.
type Drone struct {
	Pos      core.Vec2
	VX       float64 // Unused; horizontal motion is smoothed toward a target
	VY       float64
	Size     float64
	BaseAcc  float64
	Friction float64
}

// Obstacle is a rotating shape scrolling toward the drone.
type Obstacle struct {
	Shape    Shape
	Pos      core.Vec2
	Size     float64
	Angle    float64
	RotSpeed float64
	Hue      float64
}

// Dust is a decorative parallax streak.
type Dust struct {
	Pos     core.Vec2
	Depth   float64
	Opacity float64
}

// State is the mutable world snapshot. It is owned by a Sim and mutated only
// by Sim.Update and the session commands.
type State struct {
	Drone     Drone
	Obstacles []Obstacle // Spawn order; append-only apart from recycling
	Dust      []Dust

	Phase     core.Phase
	Score     int
	StartTime time.Time
	Elapsed   time.Duration
	Tick      uint64

	Pending    config.DifficultyLabel // Selected in the menu, applied on Start
	Difficulty config.DifficultyLabel // Applied profile label
	Profile    config.Profile

	Thrust    float64
	ThrustMin float64 // Dynamic bounds computed on the last tick
	ThrustMax float64

	LastHeight  float64
	HeightTimer int // Consecutive ticks with |dy| under the still threshold
	Warning     bool
}

// Running reports whether the session is in progress.
func (s *State) Running() bool {
	return s.Phase == core.PhaseRunning
}

// newState builds the load-time state: initial profile, drone at rest,
// empty obstacle field and a freshly scattered dust field.
func newState(cfg config.DroneConfig, f *Factory) State {
	initial := cfg.Difficulty.Initial
	return State{
		Drone: Drone{
			Pos:      core.Vec2{X: cfg.Drone.X, Y: cfg.Drone.Y},
			Size:     cfg.Drone.Size,
			BaseAcc:  initial.BaseAcc,
			Friction: cfg.Drone.Friction,
		},
		Obstacles:  make([]Obstacle, 0, 16),
		Dust:       f.DustField(),
		Phase:      core.PhaseIdle,
		Pending:    cfg.Difficulty.Default,
		Profile:    initial,
		Thrust:     initial.MinThrust + 1,
		ThrustMin:  initial.MinThrust,
		ThrustMax:  initial.MaxThrust,
		LastHeight: cfg.Drone.Y,
	}
}
