package drone

import (
	"math"
	"time"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

// Update advances the session by one tick and returns the new status.
// Outside the running phase it changes nothing.
func (s *Sim) Update(in core.InputFrame, now time.Time) core.GameState {
	st := &s.State
	if st.Phase != core.PhaseRunning {
		return s.Status()
	}

	st.Tick++
	st.Elapsed = now.Sub(st.StartTime)
	if st.Elapsed < 0 {
		st.Elapsed = 0
	}
	minutes := st.Elapsed.Minutes()

	s.steer(in, minutes)
	s.integrate()
	s.watchStagnation()

	scroll := s.Cfg.Physics.ScrollBase + st.Thrust*s.Cfg.Physics.ScrollPerThrust
	s.driftDust(scroll)
	s.spawn(minutes)
	s.advanceObstacles(scroll)

	return s.Status()
}

// steer applies vertical acceleration and throttle changes. Opposing keys
// pressed together cancel for the vertical axis and sum for the throttle.
func (s *Sim) steer(in core.InputFrame, minutes float64) {
	st := &s.State
	ph := s.Cfg.Physics

	acc := st.Drone.BaseAcc + minutes*ph.AccPerMinute
	if in.Has(core.ActionUp) {
		st.Drone.VY -= acc
	}
	if in.Has(core.ActionDown) {
		st.Drone.VY += acc
	}

	st.ThrustMin = st.Profile.MinThrust + minutes*ph.MinThrustPerMinute
	st.ThrustMax = st.Profile.MaxThrust + minutes*ph.MaxThrustPerMinute
	if in.Has(core.ActionRight) {
		st.Thrust += ph.ThrustUpRate
	}
	if in.Has(core.ActionLeft) {
		st.Thrust -= ph.ThrustDownRate
	}
	st.Thrust = core.ClampF(st.Thrust, st.ThrustMin, st.ThrustMax)
}

// integrate eases x toward the thrust-dependent target and moves y.
func (s *Sim) integrate() {
	st := &s.State
	ph := s.Cfg.Physics
	d := &st.Drone

	targetX := ph.TargetXBase + st.Thrust*ph.TargetXPerThrust
	d.Pos.X = core.Lerp(d.Pos.X, targetX, ph.Smoothing)

	d.VY *= d.Friction
	d.Pos.Y += d.VY
	margin := s.Cfg.Drone.MarginY
	d.Pos.Y = core.ClampF(d.Pos.Y, margin, s.Cfg.Canvas.Height-margin)
}

// watchStagnation counts ticks without meaningful vertical movement, shows
// the warning past the difficulty's limit and forces an obstacle at the
// drone's height once the threshold is reached.
func (s *Sim) watchStagnation() {
	st := &s.State
	y := st.Drone.Pos.Y

	if math.Abs(y-st.LastHeight) < s.Cfg.AntiCamp.StillThreshold {
		st.HeightTimer++
	} else {
		st.HeightTimer = 0
	}
	st.LastHeight = y

	limit := s.Cfg.WarnLimit(st.Difficulty, st.Profile.CampThreshold)
	st.Warning = float64(st.HeightTimer) > limit

	if st.HeightTimer >= st.Profile.CampThreshold {
		st.Obstacles = append(st.Obstacles, s.Factory.ObstacleAt(y))
		st.HeightTimer = 0
	}
}

// driftDust scrolls the parallax field, recycling streaks that leave the
// left edge.
func (s *Sim) driftDust(scroll float64) {
	st := &s.State
	parallax := s.Cfg.Dust.Parallax
	for i := range st.Dust {
		p := &st.Dust[i]
		p.Pos.X -= scroll * p.Depth * parallax
		if p.Pos.X < 0 {
			p.Pos.X = s.Cfg.Canvas.Width
			p.Pos.Y = s.Factory.RandomHeight()
		}
	}
}

// spawn adds a random obstacle once the newest one has scrolled far enough
// from the right edge. The gap shrinks with elapsed time down to a floor.
func (s *Sim) spawn(minutes float64) {
	st := &s.State
	ph := s.Cfg.Physics

	gap := math.Max(ph.MinSpawnInterval, st.Profile.SpawnRate/(1+minutes*ph.SpawnDecayPerMinute))
	n := len(st.Obstacles)
	if n == 0 || st.Obstacles[n-1].Pos.X < s.Cfg.Canvas.Width-gap {
		st.Obstacles = append(st.Obstacles, s.Factory.Obstacle())
	}
}

// advanceObstacles moves and spins every obstacle, tests each for a hit and
// recycles the ones that scrolled off. A hit ends the session after the
// whole list has been processed, so obstacles passing on that tick still
// score.
func (s *Sim) advanceObstacles(scroll float64) {
	st := &s.State
	oc := s.Cfg.Obstacles

	hit := false
	kept := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		o.Pos.X -= scroll
		o.Angle += o.RotSpeed

		if core.Dist(st.Drone.Pos, o.Pos) < st.Drone.Size+o.Size*oc.HitFactor {
			hit = true
		}

		if o.Pos.X < oc.DespawnX {
			st.Score++
			continue
		}
		kept = append(kept, o)
	}
	clear(st.Obstacles[len(kept):])
	st.Obstacles = kept

	if hit {
		s.end()
	}
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
