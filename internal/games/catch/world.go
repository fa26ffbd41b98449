package catch

import (
	"github.com/vovakirdan/missile-protector/internal/config"
	"github.com/vovakirdan/missile-protector/internal/core"
)

// FallingObject is a target descending from the top edge.
// Objects carry no speed of their own; they all fall at the world speed.
type FallingObject struct {
	X, Y float64 // Top-left corner in field units
}

// Bounds returns the collision box for an object of the given size.
func (o FallingObject) Bounds(size float64) core.RectF {
	return core.NewRectF(o.X, o.Y, size, size)
}

// Paddle is the player-controlled catcher near the bottom edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the paddle's collision box.
func (p Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Move shifts the paddle by dx and clamps it to [0, fieldW-Width].
func (p *Paddle) Move(dx, fieldW float64) {
	p.X = core.ClampF(p.X+dx, 0, fieldW-p.Width)
}

// newPaddle centers a paddle horizontally, BottomMargin above the bottom edge.
func newPaddle(cfg config.CatchConfig) Paddle {
	return Paddle{
		X:      cfg.Field.Width/2 - cfg.Paddle.Width/2,
		Y:      cfg.Field.Height - cfg.Paddle.Height - cfg.Paddle.BottomMargin,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	}
}

// World holds all mutable session state of one game.
type World struct {
	cfg     config.CatchConfig
	ramp    *config.Ramp
	spawner *Spawner

	paddle  Paddle
	objects []FallingObject
	speed   float64 // Shared fall speed, read by every object

	score   int
	catches int
	misses  int
	phase   core.Phase
	won     bool
	ticks   uint64
}

// NewWorld creates a world in its initial phase. The seed drives spawning.
func NewWorld(cfg config.CatchConfig, seed int64) *World {
	ramp := config.NewRamp(cfg)
	w := &World{
		cfg:     cfg,
		ramp:    ramp,
		spawner: NewSpawner(seed, cfg, ramp),
		objects: make([]FallingObject, 0, 16),
	}
	w.restart()
	w.phase = core.PhasePlaying
	if cfg.Rules.ShowInstructions {
		w.phase = core.PhaseInstructions
	}
	return w
}

// restart resets everything a new round needs. The spawner keeps its RNG
// stream so consecutive rounds differ.
func (w *World) restart() {
	w.paddle = newPaddle(w.cfg)
	w.objects = w.objects[:0]
	w.speed = w.cfg.Objects.InitialSpeed
	w.spawner.Reset()
	w.score = 0
	w.catches = 0
	w.misses = 0
	w.won = false
	w.ticks = 0
}

// Start leaves the instructions screen. It reports whether the phase changed.
func (w *World) Start() bool {
	if w.phase != core.PhaseInstructions {
		return false
	}
	w.phase = core.PhasePlaying
	return true
}

// Restart begins a new round after game over. It reports whether the
// phase changed.
func (w *World) Restart() bool {
	if w.phase != core.PhaseGameOver {
		return false
	}
	w.restart()
	w.phase = core.PhasePlaying
	return true
}

// Update advances one playing frame: spawn roll, chance ramp, object
// movement with catch/miss resolution, speed ramp, then paddle movement.
// The round ends the moment the score reaches a bound; objects not yet
// processed in that frame stay where they are.
func (w *World) Update(left, right bool) []core.Event {
	if w.phase != core.PhasePlaying {
		return nil
	}

	var events []core.Event
	w.ticks++

	if obj, ok := w.spawner.Roll(); ok {
		w.objects = append(w.objects, obj)
		events = append(events, core.Event{Kind: core.EventSpawned, Score: w.score})
	}

	paddle := w.paddle.Bounds()
	size := w.cfg.Objects.Size

	kept := w.objects[:0]
	for _, obj := range w.objects {
		if w.phase != core.PhasePlaying {
			kept = append(kept, obj)
			continue
		}

		obj.Y += w.speed

		switch {
		case obj.Bounds(size).Intersects(paddle):
			w.score++
			w.catches++
			events = append(events, core.Event{Kind: core.EventCaught, Score: w.score})
			events = w.checkTerminal(events)
		case obj.Y > w.cfg.Field.Height:
			w.score--
			w.misses++
			events = append(events, core.Event{Kind: core.EventMissed, Score: w.score})
			events = w.checkTerminal(events)
		default:
			kept = append(kept, obj)
		}
	}
	w.objects = kept

	if w.phase != core.PhasePlaying {
		return events
	}

	w.speed = w.ramp.NextSpeed(w.speed)

	if left {
		w.paddle.Move(-w.cfg.Paddle.Step, w.cfg.Field.Width)
	}
	if right {
		w.paddle.Move(w.cfg.Paddle.Step, w.cfg.Field.Width)
	}

	return events
}

// checkTerminal ends the round if the score reached either bound.
func (w *World) checkTerminal(events []core.Event) []core.Event {
	switch {
	case w.score >= w.cfg.Rules.WinScore:
		w.phase = core.PhaseGameOver
		w.won = true
		events = append(events, core.Event{Kind: core.EventWon, Score: w.score})
	case w.score <= w.cfg.Rules.LoseScore:
		w.phase = core.PhaseGameOver
		w.won = false
		events = append(events, core.Event{Kind: core.EventLost, Score: w.score})
	}
	return events
}

// Phase returns the current session phase.
func (w *World) Phase() core.Phase { return w.phase }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Speed returns the shared fall speed.
func (w *World) Speed() float64 { return w.speed }

// Paddle returns a copy of the paddle.
func (w *World) Paddle() Paddle { return w.paddle }

// Objects returns the live objects. Callers must not modify the slice.
func (w *World) Objects() []FallingObject { return w.objects }

// State returns the platform-visible summary.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		Phase:    w.phase,
		GameOver: w.phase == core.PhaseGameOver,
		Won:      w.won,
		Catches:  w.catches,
		Misses:   w.misses,
		Ticks:    w.ticks,
	}
}
