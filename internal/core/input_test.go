package core

import "testing"

func TestInputFrameControls(t *testing.T) {
	f := NewInputFrame()
	if f.Controls().Any() {
		t.Fatal("empty frame should produce no controls")
	}

	f.Set(ActionRight)
	f.Set(ActionRun)
	c := f.Controls()
	if !c.Right || !c.Run || c.Left || c.Jump {
		t.Errorf("Controls() = %+v, expected right+run", c)
	}

	f.Clear()
	if f.Has(ActionRight) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameNilMap(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
