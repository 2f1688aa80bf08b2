package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fpv-neon/internal/core"
	_ "github.com/vovakirdan/fpv-neon/internal/games/drone"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.Clock = core.NewManualClock(time.Unix(1_700_000_000, 0))

	m, err := NewModel("drone", cfg, nil, 80, 26)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestNewModelUnknownGame(t *testing.T) {
	if _, err := NewModel("nope", core.DefaultConfig(), nil, 80, 24); err == nil {
		t.Error("NewModel with an unknown game should fail")
	}
}

func TestMenuSelectsAndStarts(t *testing.T) {
	m := newTestModel(t)

	if m.State().Phase != core.PhaseIdle {
		t.Fatalf("phase = %v, want idle", m.State().Phase)
	}
	if v := m.View(); !strings.Contains(v, "NORMAL") || !strings.Contains(v, "IMPOSSIBLE") {
		t.Errorf("menu view is missing difficulties:\n%s", v)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	st := m.State()
	if !st.Running() {
		t.Fatalf("phase = %v after enter, want running", st.Phase)
	}
	if st.Difficulty != "hard" {
		t.Errorf("difficulty = %q, want hard", st.Difficulty)
	}
}

func TestTicksAdvanceOnlyWhileRunning(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, TickMsg(time.Now()))
	if m.State().Phase != core.PhaseIdle {
		t.Fatal("tick started the session")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	before := m.State().Altitude

	for i := 0; i < 20; i++ {
		m = send(t, m, runeKey("w"))
		m = send(t, m, TickMsg(time.Now()))
	}

	if got := m.State().Altitude; got <= before {
		t.Errorf("altitude = %d after climbing, want above %d", got, before)
	}
	if v := m.View(); !strings.Contains(v, "SPD") || !strings.Contains(v, "ALT") {
		t.Errorf("flight view is missing the HUD:\n%s", v)
	}
}

func TestReloadIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey("r"))

	if !m.State().Running() {
		t.Error("r interrupted a running session")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q, want empty", v)
	}
}
