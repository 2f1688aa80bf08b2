package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fpv-neon/internal/core"
)

// KeyMap defines the key bindings for the terminal frontend.
type KeyMap struct {
	Climb    key.Binding
	Dive     key.Binding
	Slower   key.Binding
	Faster   key.Binding
	Start    key.Binding
	Reload   key.Binding
	Quit     key.Binding
	MenuUp   key.Binding
	MenuDown key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Climb, k.Dive, k.Slower, k.Faster, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Climb, k.Dive, k.Slower, k.Faster},
		{k.Start, k.Reload, k.Quit},
	}
}

// MenuHelp returns the bindings shown under the difficulty picker.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.MenuUp, k.MenuDown, k.Start, k.Quit}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Climb: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "climb"),
		),
		Dive: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "dive"),
		),
		Slower: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "less thrust"),
		),
		Faster: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "more thrust"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "launch"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		MenuUp: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "easier"),
		),
		MenuDown: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "harder"),
		),
	}
}

// keyNames translates Bubble Tea key strings into the lower-cased key names
// the simulation's input mapping understands.
var keyNames = map[string]string{
	"w":     "w",
	"up":    "arrowup",
	"s":     "s",
	"down":  "arrowdown",
	"a":     "a",
	"left":  "arrowleft",
	"d":     "d",
	"right": "arrowright",
}

// KeyName returns the key name for a flight key message, or "" for keys
// that do not steer the drone.
func KeyName(msg tea.KeyMsg) string {
	return keyNames[msg.String()]
}

// MapKey translates a key message to a flight action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Climb):
		return core.ActionUp, false
	case key.Matches(msg, k.Dive):
		return core.ActionDown, false
	case key.Matches(msg, k.Slower):
		return core.ActionLeft, false
	case key.Matches(msg, k.Faster):
		return core.ActionRight, false
	case key.Matches(msg, k.Start):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Reload):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}
