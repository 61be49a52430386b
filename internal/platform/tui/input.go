package tui

import (
	"time"

	"github.com/vovakirdan/circus-catch/internal/core"
)

const (
	// DefaultHoldWindow is how long a direction stays held after its last
	// key event. Terminals report repeats, never releases, so a held arrow
	// is a stream of presses and a released one simply stops arriving.
	DefaultHoldWindow = 180 * time.Millisecond

	tiltStep = 5.0  // degrees per [ or ] press
	tiltMax  = 90.0 // emulated readings stay within ±tiltMax
)

// Input accumulates key and mouse events between ticks and turns them into
// one core.InputFrame per tick.
type Input struct {
	hold time.Duration

	leftUntil  time.Time
	rightUntil time.Time
	edges      core.InputFrame // edge-triggered actions since the last frame

	tiltEnabled bool
	tilt        float64
}

// NewInput creates an input adapter. hold <= 0 selects DefaultHoldWindow.
func NewInput(hold time.Duration, tilt bool) *Input {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Input{
		hold:        hold,
		edges:       core.NewInputFrame(),
		tiltEnabled: tilt,
	}
}

// Press records an action at time now. Left and Right start (or extend) a
// hold and cancel each other; every other action fires once on the next
// frame.
func (in *Input) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
	case core.ActionLeft:
		in.leftUntil = now.Add(in.hold)
		in.rightUntil = time.Time{}
	case core.ActionRight:
		in.rightUntil = now.Add(in.hold)
		in.leftUntil = time.Time{}
	default:
		in.edges.Set(a)
	}
}

// Release drops every held direction, e.g. when the game pauses.
func (in *Input) Release() {
	in.leftUntil = time.Time{}
	in.rightUntil = time.Time{}
}

// Frame builds the input for the tick at time now and clears edge actions.
func (in *Input) Frame(now time.Time) core.InputFrame {
	frame := in.edges.Clone()
	in.edges.Clear()

	if now.Before(in.leftUntil) {
		frame.Set(core.ActionLeft)
	}
	if now.Before(in.rightUntil) {
		frame.Set(core.ActionRight)
	}
	if in.tiltEnabled {
		frame.SetTilt(in.tilt)
	}
	return frame
}

// TiltEnabled reports whether tilt emulation is on.
func (in *Input) TiltEnabled() bool {
	return in.tiltEnabled
}

// Tilt returns the emulated tilt angle in degrees.
func (in *Input) Tilt() float64 {
	return in.tilt
}

// NudgeTilt turns the emulated device by steps increments of tiltStep.
func (in *Input) NudgeTilt(steps int) {
	in.setTilt(in.tilt + float64(steps)*tiltStep)
}

// LevelTilt puts the emulated device flat.
func (in *Input) LevelTilt() {
	in.tilt = 0
}

// MouseTilt derives the angle from the pointer column: the screen centre is
// level and either edge is ±90°.
func (in *Input) MouseTilt(x, width int) {
	if width <= 1 {
		return
	}
	half := float64(width-1) / 2
	in.setTilt((float64(x) - half) / half * tiltMax)
}

func (in *Input) setTilt(deg float64) {
	in.tilt = core.ClampF(deg, -tiltMax, tiltMax)
}
