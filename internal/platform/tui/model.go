package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
	"github.com/vovakirdan/fpv-neon/internal/registry"
)

// hudLines is the number of rows reserved above the playfield.
const hudLines = 2

// Model is the Bubble Tea model for a flight session.
type Model struct {
	gameID   string
	game     registry.Game
	config   core.RuntimeConfig
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	menu     DifficultyMenu
	held     *HeldKeys
	canvas   *canvas.Canvas
	raster   *Rasterizer
	screen   *core.Screen
	state    core.GameState
	width    int
	height   int
	quitting bool
	err      error
}

// NewModel loads the game and builds an idle session model.
func NewModel(gameID string, cfg core.RuntimeConfig, logger *log.Logger, width, height int) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		gameID: gameID,
		config: cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(cfg.KeyHold),
		raster: NewRasterizer(),
		screen: core.NewScreen(width, max(0, height-hudLines)),
		width:  width,
		height: height,
	}
	if err := m.load(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// load builds a fresh game instance. The difficulty picked last time stays
// selected.
func (m *Model) load() error {
	g, err := registry.Load(m.gameID, m.config)
	if err != nil {
		return err
	}

	w, h := g.CanvasSize()
	c, err := canvas.New(w, h)
	if err != nil {
		return err
	}

	profiles, _ := g.(ProfileSource)
	m.game = g
	m.canvas = c
	m.menu = NewDifficultyMenu(g.Difficulties(), profiles, m.config.Difficulty)
	m.state = g.State()
	m.held.Reset()

	m.logger.Debug("session loaded", "game", m.gameID, "difficulty", m.config.Difficulty, "seed", m.config.Seed)
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-hudLines))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state.Phase {
	case core.PhaseIdle:
		switch {
		case key.Matches(msg, m.keys.MenuUp):
			m.menu.Up()
		case key.Matches(msg, m.keys.MenuDown):
			m.menu.Down()
		case key.Matches(msg, m.keys.Start):
			label := m.menu.Selected()
			m.config.Difficulty = label
			m.game.SetDifficulty(label)
			m.game.Start()
			m.state = m.game.State()
			m.logger.Info("session started", "difficulty", label)
		}

	case core.PhaseRunning:
		m.held.Press(KeyName(msg), now)

	case core.PhaseEnded:
		if key.Matches(msg, m.keys.Reload) {
			if err := m.load(); err != nil {
				m.logger.Error("reload failed", "error", err)
				m.err = err
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleTick advances the simulation while a session is running.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.state.Running() {
		res := m.game.Step(m.held.Frame(now))
		if res.State.GameOver {
			m.logger.Info("session ended",
				"score", res.State.FinalScore,
				"elapsed", res.State.Elapsed.Round(time.Millisecond),
				"difficulty", res.State.Difficulty,
			)
		}
		m.state = res.State
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state.Phase == core.PhaseIdle {
		return m.viewMenu()
	}

	m.canvas.Reset()
	m.game.Render(m.canvas)
	m.raster.Project(m.canvas, m.screen)
	if m.state.GameOver {
		drawGameOver(m.screen, m.state)
	}

	var b strings.Builder
	b.WriteString(renderHUD(m.state))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	return b.String()
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("F P V   N E O N"))
	b.WriteString("\n\n")
	b.WriteString(hudLabelStyle.Render("  Fly between the shapes. Hovering in place draws fire."))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.MenuHelp()))
	b.WriteString("\n")
	return b.String()
}

// State returns the last status snapshot.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given game.
func Run(gameID string, cfg core.RuntimeConfig, logger *log.Logger, width, height int) error {
	model, err := NewModel(gameID, cfg, logger, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
