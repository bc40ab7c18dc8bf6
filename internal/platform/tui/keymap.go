package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Inspect    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "w"),
			key.WithHelp("space", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Inspect: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "log odds"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Start},
		{k.Pause, k.Restart, k.Inspect},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether the action should be
// held across ticks rather than delivered once.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, held bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, true
	case key.Matches(msg, k.Start):
		return core.ActionJump, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Inspect):
		return core.ActionInspect, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Apply routes a key press into the hold latch or the one-shot frame.
// A horizontal press releases the opposite direction.
// Returns the mapped action.
func (km *KeyMapper) Apply(msg tea.KeyMsg, held *core.HeldKeys, frame *core.InputFrame) core.Action {
	action, isHeld := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case isHeld:
		if action == core.ActionLeft {
			held.Release(core.ActionRight)
		} else {
			held.Release(core.ActionLeft)
		}
		held.Press(action)
	default:
		frame.Set(action)
	}
	return action
}
