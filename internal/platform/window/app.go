package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
	"github.com/vovakirdan/fpv-neon/internal/registry"
)

// App implements ebiten.Game for one game ID.
type App struct {
	gameID string
	config core.RuntimeConfig
	logger *log.Logger

	game    registry.Game
	canvas  *canvas.Canvas
	painter *Painter
	trail   *ebiten.Image // Persistent surface the fade overlay accumulates on
	keys    core.KeyState
	state   core.GameState

	labels []string
	cursor int
}

// NewApp loads the game and returns an idle app.
func NewApp(gameID string, cfg core.RuntimeConfig, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &App{
		gameID: gameID,
		config: cfg,
		logger: logger,
		keys:   make(core.KeyState),
	}
	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

// load builds a fresh game instance and a clean drawing surface.
func (a *App) load() error {
	g, err := registry.Load(a.gameID, a.config)
	if err != nil {
		return err
	}
	w, h := g.CanvasSize()
	c, err := canvas.New(w, h)
	if err != nil {
		return err
	}

	a.game = g
	a.canvas = c
	a.state = g.State()
	a.labels = g.Difficulties()
	a.cursor = 0
	for i, l := range a.labels {
		if l == a.config.Difficulty {
			a.cursor = i
		}
	}
	clear(a.keys)
	if a.trail != nil {
		a.trail.Clear()
	}
	return nil
}

// Update advances one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch a.state.Phase {
	case core.PhaseIdle:
		a.updateMenu()
	case core.PhaseRunning:
		res := a.game.Step(pollKeys(a.keys))
		if res.State.GameOver {
			a.logger.Info("session ended",
				"score", res.State.FinalScore,
				"elapsed", res.State.Elapsed,
				"difficulty", res.State.Difficulty,
			)
		}
		a.state = res.State
	case core.PhaseEnded:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			if err := a.load(); err != nil {
				return fmt.Errorf("reload: %w", err)
			}
		}
	}
	return nil
}

func (a *App) updateMenu() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		if a.cursor > 0 {
			a.cursor--
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		if a.cursor < len(a.labels)-1 {
			a.cursor++
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if len(a.labels) == 0 {
			return
		}
		label := a.labels[a.cursor]
		a.config.Difficulty = label
		a.game.SetDifficulty(label)
		a.game.Start()
		a.state = a.game.State()
		a.logger.Info("session started", "difficulty", label)
	}
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	if a.state.Phase == core.PhaseIdle {
		drawMenu(screen, a.labels, a.cursor)
		return
	}

	if a.painter == nil {
		a.painter = NewPainter()
	}
	if a.trail == nil {
		b := screen.Bounds()
		a.trail = ebiten.NewImage(b.Dx(), b.Dy())
	}

	a.canvas.Reset()
	a.game.Render(a.canvas)
	a.painter.Paint(a.trail, a.canvas)

	screen.DrawImage(a.trail, nil)
	drawOSD(screen, a.state)
	if a.state.GameOver {
		drawGameOver(screen, a.state)
	}
}

// Layout returns the fixed logical canvas size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.game.CanvasSize()
	return int(w), int(h)
}

// Run opens the window and blocks until it is closed.
func Run(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	app, err := NewApp(gameID, cfg, logger)
	if err != nil {
		return err
	}

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
