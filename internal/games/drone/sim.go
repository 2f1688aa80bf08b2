package drone

import (
	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

// Sim is the simulation context for one session: tuning, world state and
// the factory that feeds it. The update engine mutates it; the renderer
// only reads it.
type Sim struct {
	Cfg     config.DroneConfig
	State   State
	Factory *Factory
}

// NewSim builds a session in the idle phase.
func NewSim(cfg config.DroneConfig, rng core.Rand) *Sim {
	f := NewFactory(cfg, rng)
	return &Sim{
		Cfg:     cfg,
		State:   newState(cfg, f),
		Factory: f,
	}
}

// Status derives the published snapshot from the current state.
func (s *Sim) Status() core.GameState {
	st := &s.State
	d := s.Cfg.Display
	return core.GameState{
		Phase:      st.Phase,
		Difficulty: string(st.Pending),
		Score:      st.Score,
		Speed:      floorInt(d.SpeedBase + st.Thrust*d.SpeedPerThrust),
		Altitude:   floorInt((d.AltitudeRef - st.Drone.Pos.Y) / d.AltitudeScale),
		Warning:    st.Warning && st.Phase == core.PhaseRunning,
		GameOver:   st.Phase == core.PhaseEnded,
		FinalScore: st.Score,
		Elapsed:    st.Elapsed,
		Thrust:     st.Thrust,
		ThrustMin:  st.ThrustMin,
		ThrustMax:  st.ThrustMax,
	}
}
