// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing frontends
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every game implements.
// Games contain pure logic with no frontend dependencies (no Bubble Tea, no ebiten).
// Frontends handle input mapping, timing, and presenting the canvas.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "drone").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Load builds a fresh idle session from the runtime configuration.
	// Reloading is the only way back from a finished session.
	Load(cfg core.RuntimeConfig) error

	// Difficulties lists the selectable difficulty labels, easiest first.
	Difficulties() []string

	// SetDifficulty selects the profile applied on Start. Ignored once started.
	SetDifficulty(label string)

	// Start begins the session. Ignored unless the session is idle.
	Start()

	// Step advances the simulation by one tick.
	// Input is abstracted to platform-level actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state onto dst. Render never changes state.
	Render(dst *canvas.Canvas)

	// CanvasSize returns the logical drawing surface in pixels.
	CanvasSize() (width, height float64)

	// State returns the latest status snapshot.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new, unloaded instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Load creates a game by ID and loads it with cfg.
func Load(id string, cfg core.RuntimeConfig) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if err := g.Load(cfg); err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
