package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/fpv-neon/internal/canvas"
	"github.com/vovakirdan/fpv-neon/internal/core"
)

type stubGame struct {
	loaded bool
	fail   error
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Load(core.RuntimeConfig) error        { g.loaded = true; return g.fail }
func (g *stubGame) Difficulties() []string               { return nil }
func (g *stubGame) SetDifficulty(string)                 {}
func (g *stubGame) Start()                               {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*canvas.Canvas)                {}
func (g *stubGame) CanvasSize() (float64, float64)       { return 1, 1 }
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-ok", func() Game { return &stubGame{} })

	if !Exists("stub-ok") {
		t.Fatal("stub-ok should exist after Register")
	}

	g, err := Load("stub-ok", core.DefaultConfig())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.(*stubGame).loaded {
		t.Error("Load did not call Game.Load")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-ok" {
			found = true
			if info.Title != "Stub" {
				t.Errorf("title = %q, want Stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() is missing stub-ok")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("err = %v, want ErrUnknownGame", err)
	}
}

func TestLoadPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	Register("stub-fail", func() Game { return &stubGame{fail: boom} })

	if _, err := Load("stub-fail", core.DefaultConfig()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{} })
}
