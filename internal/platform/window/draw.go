package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/missile-protector/internal/core"
)

// DebugPrint glyph size
const (
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor = color.RGBA{0x05, 0x05, 0x10, 0xff}
	objectColor     = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	paddleColor     = color.RGBA{0x40, 0x80, 0xff, 0xff}
)

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := w.snap

	for _, st := range s.Stars {
		b := uint8(core.Clamp(st.Brightness, 0, 255))
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size)/2+0.5,
			color.RGBA{b, b, b, 0xff}, false)
	}

	if s.Phase == core.PhaseInstructions {
		w.drawPanel(screen, w.game.Title(), w.game.InstructionLines())
		return
	}

	for _, obj := range s.Objects {
		r := obj.Bounds(s.ObjectSize)
		w.drawBox(screen, w.sprites.Object, r, objectColor)
	}
	w.drawBox(screen, w.sprites.Paddle, s.Paddle.Bounds(), paddleColor)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %.2f", s.Speed), 10, 10+glyphH)

	if s.Phase == core.PhaseGameOver {
		title := "GAME OVER!"
		if s.Won {
			title = "YOU WIN!"
		}
		w.drawPanel(screen, title, []string{
			fmt.Sprintf("Score: %d", s.Score),
			"",
			"Press SPACE to restart",
		})
	}
}

// drawBox draws an image stretched over r, or a filled rectangle when img is nil.
func (w *Window) drawBox(screen, img *ebiten.Image, r core.RectF, fallback color.Color) {
	if img == nil {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback, false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

// drawPanel draws a centered, fading box with a title and body lines.
func (w *Window) drawPanel(screen *ebiten.Image, title string, lines []string) {
	alpha := w.overlay.Alpha()
	if !w.overlay.Visible() || alpha <= 0 {
		return
	}

	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	pw := float32((width + 4) * glyphW)
	ph := float32((len(lines) + 4) * glyphH)
	sw, sh := float32(w.snap.FieldW), float32(w.snap.FieldH)
	px, py := (sw-pw)/2, (sh-ph)/2

	// Premultiplied alpha
	a := uint8(220 * alpha)
	vector.DrawFilledRect(screen, px, py, pw, ph, color.RGBA{0, 0, 0, a}, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, color.RGBA{a, a, a, a}, false)

	// DebugPrint has no opacity; hold the text until the panel is mostly in
	if alpha < 0.5 {
		return
	}
	tx := int(px) + (int(pw)-len([]rune(title))*glyphW)/2
	ebitenutil.DebugPrintAt(screen, title, tx, int(py)+glyphH/2)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(px)+2*glyphW, int(py)+(i+2)*glyphH)
	}
}
