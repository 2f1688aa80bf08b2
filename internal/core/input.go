package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, ArrowUp - climb
	ActionDown           // S, ArrowDown - descend
	ActionLeft           // A, ArrowLeft - reduce thrust
	ActionRight          // D, ArrowRight - increase thrust
	ActionConfirm        // Enter - start the session
	ActionRestart        // R - reload after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// keyActions maps lower-cased key names to the movement action they drive.
var keyActions = map[string]Action{
	"w":          ActionUp,
	"arrowup":    ActionUp,
	"s":          ActionDown,
	"arrowdown":  ActionDown,
	"a":          ActionLeft,
	"arrowleft":  ActionLeft,
	"d":          ActionRight,
	"arrowright": ActionRight,
}

// ActionForKey returns the movement action bound to a key name.
// Key names are matched case-insensitively.
func ActionForKey(name string) Action {
	return keyActions[strings.ToLower(name)]
}

// KeyState is the pressed-state mapping maintained by a frontend,
// keyed by lower-cased key name.
type KeyState map[string]bool

// Press marks a key as held.
func (k KeyState) Press(name string) {
	k[strings.ToLower(name)] = true
}

// Release marks a key as no longer held.
func (k KeyState) Release(name string) {
	k[strings.ToLower(name)] = false
}

// Frame builds the input frame for one tick from the currently held keys.
// Several keys may drive the same action; opposing actions are all reported.
func (k KeyState) Frame() InputFrame {
	frame := NewInputFrame()
	for name, down := range k {
		if !down {
			continue
		}
		if a := ActionForKey(name); a != ActionNone {
			frame.Set(a)
		}
	}
	return frame
}

// InputFrame represents the input state for the player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
