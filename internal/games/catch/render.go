package catch

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/missile-protector/internal/core"
)

// Visual characters for rendering
const (
	ObjectChar     = '▓'
	ObjectTipChar  = '▼'
	PaddleChar     = '█'
	FlatPaddleChar = '▀'
	SmallStarChar  = '·'
	LargeStarChar  = '*'
)

// Minimum terminal size for a readable field
const (
	MinScreenW = 40
	MinScreenH = 16
)

// hudRows is the number of rows above the field.
const hudRows = 1

// Render draws the current frame. The logical field is scaled to fit the
// screen below the HUD row.
func (g *Game) Render(dst *core.Screen) {
	g.ensureWorld()
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(dst, g.cfg.Field.Width, g.cfg.Field.Height)

	g.renderStars(dst, v)

	switch g.world.Phase() {
	case core.PhaseInstructions:
		g.renderInstructions(dst)
		return
	case core.PhasePlaying, core.PhaseGameOver:
		g.renderObjects(dst, v)
		g.renderPaddle(dst, v)
		g.renderHUD(dst)
	}

	if g.world.Phase() == core.PhaseGameOver {
		g.renderGameOver(dst)
	}
}

// viewport maps field units to screen cells.
type viewport struct {
	sx, sy float64
	top    int
	bottom int // Exclusive
	width  int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - hudRows
	return viewport{
		sx:     float64(dst.Width()) / fieldW,
		sy:     float64(rows) / fieldH,
		top:    hudRows,
		bottom: dst.Height(),
		width:  dst.Width(),
	}
}

// cell converts a field point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// rect converts a field box to a screen rectangle covering at least one
// cell, clipped to the field rows.
func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.cell(r.X, r.Y)
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := v.top + int(math.Ceil(r.Bottom()*v.sy))
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)

	y0 = core.Clamp(y0, v.top, v.bottom)
	y1 = core.Clamp(y1, v.top, v.bottom)
	x0 = core.Clamp(x0, 0, v.width)
	x1 = core.Clamp(x1, 0, v.width)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// field is the screen area below the HUD.
func (v viewport) field() core.Rect {
	return core.NewRect(0, v.top, v.width, v.bottom-v.top)
}

func (g *Game) renderStars(dst *core.Screen, v viewport) {
	for _, s := range g.stars.Stars() {
		x, y := v.cell(s.X, s.Y)
		if y < v.top || y >= v.bottom {
			continue
		}
		glyph := SmallStarChar
		if s.Size > 1 {
			glyph = LargeStarChar
		}
		dst.SetColored(x, y, glyph, core.Brightness(s.Brightness))
	}
}

func (g *Game) renderObjects(dst *core.Screen, v viewport) {
	size := g.cfg.Objects.Size
	field := v.field()
	for _, obj := range g.world.Objects() {
		r := v.rect(obj.Bounds(size))
		if !r.Intersects(field) {
			continue
		}
		dst.DrawRectColored(r, ObjectChar, core.ColorRed)
		// Tip on the leading edge
		tipX, _ := r.Center()
		dst.SetColored(tipX, r.Bottom()-1, ObjectTipChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	r := v.rect(g.world.Paddle().Bounds())
	glyph := PaddleChar
	// Thinner than a row: draw a single half-block line
	if g.cfg.Paddle.Height*v.sy < 1 {
		glyph = FlatPaddleChar
		r.H = 1
	}
	color := core.ColorBrightCyan
	if g.cfg.Sprites.UsesSprites() {
		color = core.ColorBrightBlue
	}
	dst.DrawRectColored(r, glyph, color)
}

// renderHUD draws the score on the left and the ramp state on the right.
func (g *Game) renderHUD(dst *core.Screen) {
	rules := g.cfg.Rules
	scoreText := fmt.Sprintf("Score: %d", g.world.Score())
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	goalText := fmt.Sprintf("Win %+d / Lose %d", rules.WinScore, rules.LoseScore)
	dst.DrawTextCenteredColored(0, goalText, core.ColorGray)

	rampText := fmt.Sprintf("Speed %.2f  Spawn %.2f%%", g.world.Speed(), g.world.spawner.Chance()*100)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(rampText)-1, 0, rampText, core.ColorGray)
}

// InstructionLines returns the text of the instructions screen.
func (g *Game) InstructionLines() []string {
	rules := g.cfg.Rules
	return []string{
		"How to Play:",
		"• Use LEFT and RIGHT arrow keys to move the shield",
		"• Catch missiles to score points",
		"• Missing missiles will cost you points",
		fmt.Sprintf("• Reach %d points to win", rules.WinScore),
		fmt.Sprintf("• Don't reach %d points or you lose!", rules.LoseScore),
		"",
		"Game Features:",
		"• Missiles fall faster over time",
		"• More missiles appear as you progress",
		"• Press SPACE to restart when game is over",
		"",
		"Press SPACE to Start!",
	}
}

func (g *Game) renderInstructions(dst *core.Screen) {
	lines := g.InstructionLines()
	g.drawCenteredBox(dst, g.title, lines, core.ColorBrightYellow)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	title := "GAME OVER!"
	color := core.ColorBrightRed
	if g.world.State().Won {
		title = "YOU WIN!"
		color = core.ColorBrightGreen
	}
	lines := []string{
		fmt.Sprintf("Score: %d", g.world.Score()),
		"",
		"Press SPACE to restart",
	}
	g.drawCenteredBox(dst, title, lines, color)
}

// drawCenteredBox draws a bordered box with a title and left-aligned body.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, lines []string, color core.Color) {
	boxW := utf8.RuneCountInString(title)
	for _, line := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(line))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max(0, (dst.Height()-boxH)/2)

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, color)

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, color)

	for i, line := range lines {
		dst.DrawText(boxX+2, boxY+3+i, line)
	}
}
