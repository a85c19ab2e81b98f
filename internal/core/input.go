package core

// Action is a semantic input, abstracted from physical keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, mouse click
	ActionUp             // menu cursor
	ActionDown           // menu cursor
	ActionConfirm        // Enter
	ActionBack           // B, Esc - back to home
	ActionRestart        // R after game over
	ActionPause          // P
	ActionQuit           // Q, Ctrl+C
	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
// Keyboard, mouse and touch all collapse into the same edge-triggered
// actions, so a game only ever sees "jump requested".
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}
