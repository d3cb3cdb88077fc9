package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Point(12)
	f.Point(14)

	if !f.Has(ActionLeft) {
		t.Error("Frame should report Left after Set")
	}
	if !f.HasPointer || f.PointerX != 14 {
		t.Errorf("Latest pointer sample should win, got %d (has=%v)", f.PointerX, f.HasPointer)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.HasPointer {
		t.Error("Clear should drop actions and pointer sample")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionResume, "Resume"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
