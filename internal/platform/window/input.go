package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/missile-protector/internal/core"
)

// KeyState reports keyboard state for the current tick.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	confirmKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
)

// FrameFromKeys builds the input frame for one tick. Directions are held
// state; confirm, restart and quit fire once per press.
func FrameFromKeys(ks KeyState) core.InputFrame {
	frame := core.NewInputFrame()

	if anyKey(ks.Pressed, leftKeys) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(ks.Pressed, rightKeys) {
		frame.Set(core.ActionRight)
	}
	if anyKey(ks.JustPressed, confirmKeys) {
		frame.Set(core.ActionConfirm)
	}
	if ks.JustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if ks.JustPressed(ebiten.KeyEscape) {
		frame.Set(core.ActionQuit)
	}

	return frame
}

func anyKey(fn func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if fn(k) {
			return true
		}
	}
	return false
}
