package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionConfirm) {
		t.Error("Clear should remove all actions")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Frame should be reusable after Clear")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionConfirm.String() != "Confirm" {
		t.Error("Unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("Unknown action should be named Unknown")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventCaught, Score: 1}, {Kind: EventWon, Score: 10}}}
	if !r.Has(EventWon) || !r.Has(EventCaught) {
		t.Error("Has should find emitted events")
	}
	if r.Has(EventMissed) {
		t.Error("Has should not report missing events")
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		level    int
		expected Color
	}{
		{255, ColorBrightWhite},
		{150, ColorWhite},
		{100, ColorGray},
		{50, ColorDarkGray},
	}
	for _, tc := range tests {
		if got := Brightness(tc.level); got != tc.expected {
			t.Errorf("Brightness(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}
