package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/missile-protector/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v/%v, expected %v/%v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerHoldsForTicks(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(core.ActionRight)

	// Auto-repeat every other tick keeps the key down indefinitely
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			h.Press(core.ActionRight)
		}
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d: repeat should keep right held", i)
		}
	}
}

func TestHoldTrackerOppositeCancels(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("pressing right should release left, got %v", frame.Actions)
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionRight) || frame.Has(core.ActionLeft) {
		t.Error("Release should drop both directions")
	}
}

func TestHoldTrackerDefault(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionLeft)

	held := 0
	for i := 0; i < 2*DefaultHoldTicks; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if frame.Has(core.ActionLeft) {
			held++
		}
	}
	if held != DefaultHoldTicks {
		t.Errorf("held for %d ticks, expected %d", held, DefaultHoldTicks)
	}
}

func TestHoldTrackerIgnoresOtherActions(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionConfirm)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if len(frame.Actions) != 0 {
		t.Errorf("only directions are held, got %v", frame.Actions)
	}
}
