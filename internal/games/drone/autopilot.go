package drone

import (
	"math"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

// Autopilot is a simple reactive pilot used for headless runs: it dodges
// the closest obstacle on a collision course and otherwise keeps the drone
// drifting so the anti-camp spawner never fires.
type Autopilot struct {
	Lookahead float64 // How far ahead obstacles are considered
	Clearance float64 // Extra vertical room kept beyond the hit radius
	Wander    float64 // Amplitude of the cruising sweep around mid-height
}

// NewAutopilot returns an autopilot with tuned defaults.
func NewAutopilot() Autopilot {
	return Autopilot{Lookahead: 320, Clearance: 24, Wander: 120}
}

// Frame chooses the input for the next tick.
func (a Autopilot) Frame(sim *Sim) core.InputFrame {
	st := &sim.State
	d := st.Drone
	in := core.NewInputFrame()

	if o, ok := a.threat(sim); ok {
		top := sim.Cfg.Drone.MarginY + d.Size
		bottom := sim.Cfg.Canvas.Height - sim.Cfg.Drone.MarginY - d.Size
		goUp := o.Pos.Y >= d.Pos.Y
		if goUp && d.Pos.Y <= top {
			goUp = false
		} else if !goUp && d.Pos.Y >= bottom {
			goUp = true
		}
		if goUp {
			in.Set(core.ActionUp)
		} else {
			in.Set(core.ActionDown)
		}
		in.Set(core.ActionLeft)
		return in
	}

	// Cruise: sweep around mid-height, phase driven by the tick counter.
	mid := sim.Cfg.Canvas.Height / 2
	target := mid + a.Wander*math.Sin(float64(st.Tick)/90)
	switch {
	case st.HeightTimer > st.Profile.CampThreshold/4:
		// Hovering too long; head for the far side of mid-height.
		if d.Pos.Y > mid {
			in.Set(core.ActionUp)
		} else {
			in.Set(core.ActionDown)
		}
	case d.Pos.Y > target+10 && d.VY > -3:
		in.Set(core.ActionUp)
	case d.Pos.Y < target-10 && d.VY < 3:
		in.Set(core.ActionDown)
	}

	if st.Thrust < (st.ThrustMin+st.ThrustMax)/2 {
		in.Set(core.ActionRight)
	}
	return in
}

// threat returns the nearest obstacle ahead whose band overlaps the drone's
// height.
func (a Autopilot) threat(sim *Sim) (Obstacle, bool) {
	d := sim.State.Drone
	hitFactor := sim.Cfg.Obstacles.HitFactor

	var best Obstacle
	found := false
	for _, o := range sim.State.Obstacles {
		ahead := o.Pos.X - d.Pos.X
		reach := d.Size + o.Size*hitFactor
		if ahead < -reach || ahead > a.Lookahead {
			continue
		}
		if math.Abs(o.Pos.Y-d.Pos.Y) > reach+a.Clearance {
			continue
		}
		if !found || o.Pos.X < best.Pos.X {
			best, found = o, true
		}
	}
	return best, found
}
