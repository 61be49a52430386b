package core

// Action is a semantic control input, abstracted from the physical device.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // held this tick: move left
	ActionRight          // held this tick: move right
	ActionJump           // edge-triggered: set only on the tick the press arrived
	ActionConfirm        // Enter - start the round from the ready screen
	ActionRestart        // R / click - restart after a terminal state
	ActionPause          // P, Escape - pause/unpause
	ActionQuit           // Q, Ctrl+C
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
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the normalized input for one simulation tick.
// It is produced by the platform adapter and only read by games.
type InputFrame struct {
	Actions map[Action]bool

	// Tilt is the sideways device angle in degrees, negative = left.
	// Only meaningful when TiltOK is set; no tilt source means no tilt movement.
	Tilt   float64
	TiltOK bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetTilt records an available tilt reading.
func (f *InputFrame) SetTilt(degrees float64) {
	f.Tilt = degrees
	f.TiltOK = true
}

// Clear resets actions and tilt for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tilt = 0
	f.TiltOK = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Tilt = f.Tilt
	clone.TiltOK = f.TiltOK
	return clone
}
