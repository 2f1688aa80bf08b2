package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Frontends fill it from command-line flags.
type RuntimeConfig struct {
	TickRate   int           // Simulation ticks per second (default 60)
	Seed       int64         // RNG seed for deterministic gameplay (0 = time based)
	Difficulty string        // Difficulty label selected before start
	ConfigPath string        // Custom tuning YAML, empty for the search order
	KeyHold    time.Duration // How long a terminal key press counts as held
	Clock      Clock         // Time source for the session; nil uses SystemClock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: "normal",
		KeyHold:    150 * time.Millisecond,
	}
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // menu visible, nothing simulated
	PhaseRunning              // session in progress
	PhaseEnded                // collision happened; terminal until reload
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is the status snapshot a game publishes after every tick.
// Frontends apply it to their display; games never touch display elements.
type GameState struct {
	Phase      Phase
	Difficulty string
	Score      int
	Speed      int  // Speed readout
	Altitude   int  // Altitude readout
	Warning    bool // Anti-camp warning visible
	GameOver   bool
	FinalScore int // Valid when GameOver is set
	Elapsed    time.Duration

	Thrust    float64
	ThrustMin float64 // Time-scaled lower bound this tick
	ThrustMax float64 // Time-scaled upper bound this tick
}

// Running reports whether the session is in progress.
func (s GameState) Running() bool {
	return s.Phase == PhaseRunning
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
