package tui

import (
	"time"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

// HeldKeys approximates held keys on terminals, which only report presses.
// A key counts as held for a hold window after its latest press; terminal
// auto-repeat keeps refreshing it while the key stays down.
type HeldKeys struct {
	hold    time.Duration
	pressed map[string]time.Time
	state   core.KeyState
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	if hold <= 0 {
		hold = core.DefaultConfig().KeyHold
	}
	return &HeldKeys{
		hold:    hold,
		pressed: make(map[string]time.Time),
		state:   make(core.KeyState),
	}
}

// Press records a press of the named key at now.
func (h *HeldKeys) Press(name string, now time.Time) {
	if name == "" {
		return
	}
	h.pressed[name] = now
	h.state.Press(name)
}

// Frame releases keys whose window has passed and returns the input frame
// for the keys still held at now.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	for name, at := range h.pressed {
		if now.Sub(at) > h.hold {
			h.state.Release(name)
			delete(h.pressed, name)
		}
	}
	return h.state.Frame()
}

// Reset releases every key.
func (h *HeldKeys) Reset() {
	clear(h.pressed)
	clear(h.state)
}
