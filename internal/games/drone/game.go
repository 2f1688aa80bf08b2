// Package drone implements FPV Neon, a side-scrolling endless runner: steer
// a quadcopter through a stream of rotating neon shapes for as long as
// possible. The game is pure logic; frontends feed it input frames and
// present the canvas it draws.
package drone

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/config"
	"github.com/vovakirdan/fpv-neon/internal/core"
	"github.com/vovakirdan/fpv-neon/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "drone"

// ErrNotLoaded is returned when a session is used before Load.
var ErrNotLoaded = errors.New("drone: game not loaded")

// Game adapts a Sim and its Renderer to registry.Game.
type Game struct {
	sim      *Sim
	renderer *Renderer
	clock    core.Clock
	runtime  core.RuntimeConfig
	last     core.GameState
}

// New creates an unloaded game. Call Load before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "FPV Neon"
}

// Load reads the tuning file and builds a fresh idle session.
func (g *Game) Load(rc core.RuntimeConfig) error {
	cfg, err := config.LoadDrone(rc.ConfigPath)
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}
	return g.LoadWith(rc, cfg)
}

// LoadWith builds a fresh idle session from an already loaded tuning.
func (g *Game) LoadWith(rc core.RuntimeConfig, cfg config.DroneConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g.runtime = rc
	g.clock = rc.Clock
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}

	// Rendering draws from its own stream so the frame rate never changes
	// what the simulation spawns.
	renderSeed := rc.Seed
	if renderSeed != 0 {
		renderSeed++
	}
	g.sim = NewSim(cfg, core.NewRand(rc.Seed))
	g.renderer = NewRenderer(core.NewRand(renderSeed))

	if rc.Difficulty != "" {
		g.sim.SetDifficulty(config.DifficultyLabel(rc.Difficulty))
	}
	g.last = g.sim.Status()
	return nil
}

// Sim exposes the loaded simulation for read-only inspection.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Difficulties lists the configured difficulty labels.
func (g *Game) Difficulties() []string {
	if g.sim == nil {
		return nil
	}
	labels := g.sim.Cfg.Difficulty.Labels()
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out
}

// Profile returns the tuning a difficulty label applies.
func (g *Game) Profile(label string) (config.Profile, bool) {
	if g.sim == nil {
		return config.Profile{}, false
	}
	return g.sim.Cfg.Difficulty.Lookup(config.DifficultyLabel(label))
}

// SetDifficulty selects the profile applied on Start.
func (g *Game) SetDifficulty(label string) {
	if g.sim == nil {
		return
	}
	g.sim.SetDifficulty(config.DifficultyLabel(label))
	g.last = g.sim.Status()
}

// Start begins the session at the current clock time.
func (g *Game) Start() {
	if g.sim == nil {
		return
	}
	g.sim.Start(g.clock.Now())
	g.last = g.sim.Status()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}
	g.last = g.sim.Update(in, g.clock.Now())
	return core.StepResult{State: g.last}
}

// Render draws the current state onto dst.
func (g *Game) Render(dst *canvas.Canvas) {
	if g.sim == nil {
		return
	}
	g.renderer.Draw(dst, g.sim, g.clock.Now())
}

// Frame runs one display frame: a simulation tick followed by a render.
func (g *Game) Frame(in core.InputFrame, dst *canvas.Canvas) (core.GameState, error) {
	if g.sim == nil {
		return core.GameState{}, ErrNotLoaded
	}
	res := g.Step(in)
	g.Render(dst)
	return res.State, nil
}

// CanvasSize returns the logical surface size from the tuning.
func (g *Game) CanvasSize() (width, height float64) {
	if g.sim == nil {
		d := config.DefaultDroneConfig().Canvas
		return d.Width, d.Height
	}
	return g.sim.Cfg.Canvas.Width, g.sim.Cfg.Canvas.Height
}

// State returns the latest status snapshot.
func (g *Game) State() core.GameState {
	return g.last
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
