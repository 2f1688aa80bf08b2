package drone

import (
	"testing"

	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

func TestAutopilotDodges(t *testing.T) {
	tests := []struct {
		name   string
		droneY float64
		obsY   float64
		want   core.Action
	}{
		{"obstacle below", 300, 320, core.ActionUp},
		{"obstacle above", 300, 280, core.ActionDown},
		{"pinned at the top", 40, 60, core.ActionDown},
		{"pinned at the bottom", 560, 540, core.ActionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newTestSim(t, config.DifficultyNormal)
			sim.State.Drone.Pos.Y = tt.droneY
			sim.State.Obstacles = []Obstacle{{Pos: core.Vec2{X: 300, Y: tt.obsY}, Size: 50}}

			in := NewAutopilot().Frame(sim)

			if !in.Has(tt.want) {
				t.Errorf("frame = %v, want %v", in.Actions, tt.want)
			}
			if !in.Has(core.ActionLeft) {
				t.Error("autopilot should ease off the thrust when dodging")
			}
		})
	}
}

func TestAutopilotIgnoresDistantObstacles(t *testing.T) {
	sim := newTestSim(t, config.DifficultyNormal)
	sim.State.Obstacles = []Obstacle{
		{Pos: core.Vec2{X: 900, Y: 300}, Size: 50}, // too far ahead
		{Pos: core.Vec2{X: 300, Y: 500}, Size: 50}, // different lane
		{Pos: core.Vec2{X: 20, Y: 300}, Size: 50},  // already passed
	}

	if _, ok := NewAutopilot().threat(sim); ok {
		t.Error("threat() flagged an obstacle that cannot hit the drone")
	}
}

func TestAutopilotKeepsMoving(t *testing.T) {
	sim := newTestSim(t, config.DifficultyNormal)
	pilot := NewAutopilot()

	warned := false
	for i := 0; i < 600 && sim.State.Running(); i++ {
		st := sim.Update(pilot.Frame(sim), epoch)
		warned = warned || st.Warning
	}
	if warned {
		t.Error("autopilot triggered the anti-camp warning")
	}
}
