package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space, Up - start from the title screen
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R - restart the run
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
	ActionInspect        // I - log spawn distribution (debug)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionInspect:
		return "Inspect"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Has answers "is this key held" for the tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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

// HeldKeys emulates held keys on terminals, which only report presses.
// A press keeps its action held for a number of ticks; terminal key repeat
// refreshes it before it expires while the key stays down.
type HeldKeys struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldKeys creates a latch that holds each press for holdTicks ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press marks an action as held, restarting its hold window.
func (h *HeldKeys) Press(a Action) {
	h.remaining[a] = h.holdTicks
}

// Release drops an action immediately.
func (h *HeldKeys) Release(a Action) {
	delete(h.remaining, a)
}

// Frame writes the currently held actions into f and ages every hold by one tick.
func (h *HeldKeys) Frame(f *InputFrame) {
	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}
