package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLaunch) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLaunch)
	f.Set(ActionLeft)
	if !f.Has(ActionLaunch) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLaunch) {
		t.Error("Clear should drop actions")
	}
	if !clone.Has(ActionLaunch) {
		t.Error("Clone should be independent of the source frame")
	}
}

func TestInputFramePointerSurvivesClear(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(12)
	f.Set(ActionLaunch)
	f.Clear()

	if !f.HasPointer || f.PointerCol != 12 {
		t.Errorf("pointer should persist across Clear, got %d/%v", f.PointerCol, f.HasPointer)
	}
}

func TestActionString(t *testing.T) {
	if ActionLaunch.String() != "Launch" {
		t.Errorf("ActionLaunch.String() = %q", ActionLaunch.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
