package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}
}

func TestInputFrameTilt(t *testing.T) {
	f := NewInputFrame()
	if f.TiltOK {
		t.Error("new frame should report tilt unavailable")
	}

	f.SetTilt(-35)
	if !f.TiltOK || f.Tilt != -35 {
		t.Errorf("SetTilt: got tilt=%v ok=%v", f.Tilt, f.TiltOK)
	}

	f.Set(ActionRight)
	f.Clear()
	if f.TiltOK || f.Tilt != 0 || f.Has(ActionRight) {
		t.Error("Clear should drop actions and tilt")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.SetTilt(12)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionJump) || c.Tilt != 12 || !c.TiltOK {
		t.Errorf("clone should be independent of the original, got %+v", c)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
