package drone

import (
	"time"

	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

// SetDifficulty records the label to apply on Start. It has no effect once
// the session has left the idle phase.
func (s *Sim) SetDifficulty(label config.DifficultyLabel) {
	if s.State.Phase != core.PhaseIdle {
		return
	}
	s.State.Pending = label
}

// Start applies the selected profile and begins the session at now.
// An unknown label keeps whichever profile was in effect. Start is ignored
// unless the session is idle.
func (s *Sim) Start(now time.Time) bool {
	st := &s.State
	if st.Phase != core.PhaseIdle {
		return false
	}

	if p, ok := s.Cfg.Difficulty.Lookup(st.Pending); ok {
		st.Profile = p
		st.Drone.BaseAcc = p.BaseAcc
		st.Difficulty = st.Pending
	}

	st.Thrust = st.Profile.MinThrust + 1
	st.ThrustMin = st.Profile.MinThrust
	st.ThrustMax = st.Profile.MaxThrust
	st.StartTime = now
	st.Elapsed = 0
	st.Phase = core.PhaseRunning
	return true
}

// end terminates the session. The ended phase is final; a new session
// needs a freshly loaded Sim.
func (s *Sim) end() {
	s.State.Phase = core.PhaseEnded
	s.State.Warning = false
}
