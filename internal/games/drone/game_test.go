package drone

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
	"github.com/vovakirdan/fpv-neon/internal/registry"
)

func loadGame(t *testing.T, seed int64, clock core.Clock) *Game {
	t.Helper()
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.Clock = clock

	g := New()
	if err := g.LoadWith(rc, config.DefaultDroneConfig()); err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("%q is not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "FPV Neon" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestFrameBeforeLoad(t *testing.T) {
	g := New()
	if _, err := g.Frame(core.NewInputFrame(), newCanvas(t)); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("err = %v, want ErrNotLoaded", err)
	}
	if w, h := g.CanvasSize(); w != 800 || h != 600 {
		t.Errorf("canvas size = %vx%v, want 800x600", w, h)
	}
}

func TestLoadRejectsBadConfigPath(t *testing.T) {
	rc := core.DefaultConfig()
	rc.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	if err := New().Load(rc); err == nil {
		t.Error("Load with a missing custom config should fail")
	}
}

func TestLoadCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drone.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: 1024\n  height: 768\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rc := core.DefaultConfig()
	rc.ConfigPath = path

	g := New()
	if err := g.Load(rc); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := g.CanvasSize(); w != 1024 || h != 768 {
		t.Errorf("canvas size = %vx%v, want 1024x768", w, h)
	}
}

func TestGameLifecycle(t *testing.T) {
	clock := core.NewManualClock(epoch)
	g := loadGame(t, 11, clock)

	if got := g.Difficulties(); !reflect.DeepEqual(got, []string{"easy", "normal", "hard", "impossible"}) {
		t.Errorf("Difficulties() = %v", got)
	}

	st := g.Step(core.NewInputFrame()).State
	if st.Phase != core.PhaseIdle || st.Difficulty != "normal" {
		t.Fatalf("state before start = %+v", st)
	}

	g.SetDifficulty("hard")
	g.Start()
	if st := g.State(); !st.Running() || st.Difficulty != "hard" || st.Thrust != 4 {
		t.Fatalf("state after start = %+v", st)
	}

	clock.Advance(30 * time.Second)
	st, err := g.Frame(core.FrameOf(core.ActionUp), newCanvas(t))
	if err != nil {
		t.Fatal(err)
	}
	if st.Elapsed != 30*time.Second {
		t.Errorf("elapsed = %v, want 30s", st.Elapsed)
	}
	if !reflect.DeepEqual(st, g.State()) {
		t.Error("State() differs from the last Frame result")
	}
}

func TestDeterministicReplay(t *testing.T) {
	play := func() (core.GameState, []Obstacle) {
		clock := core.NewManualClock(epoch)
		g := loadGame(t, 42, clock)
		g.SetDifficulty("hard")
		g.Start()

		dst := newCanvas(t)
		for i := 0; i < 1200; i++ {
			var in core.InputFrame
			switch (i / 25) % 4 {
			case 0:
				in = core.FrameOf(core.ActionUp, core.ActionRight)
			case 2:
				in = core.FrameOf(core.ActionDown)
			default:
				in = core.NewInputFrame()
			}
			clock.Advance(core.TickInterval(60))
			dst.Reset()
			if _, err := g.Frame(in, dst); err != nil {
				t.Fatal(err)
			}
		}
		return g.State(), append([]Obstacle(nil), g.Sim().State.Obstacles...)
	}

	st1, obs1 := play()
	st2, obs2 := play()

	if st1 != st2 {
		t.Errorf("status differs between runs:\n%+v\n%+v", st1, st2)
	}
	if !reflect.DeepEqual(obs1, obs2) {
		t.Error("obstacle field differs between runs")
	}
}
