package catch

import "github.com/vovakirdan/missile-protector/internal/core"

// Snapshot is a value copy of everything a frontend needs to draw a frame.
// It shares no memory with the game.
type Snapshot struct {
	Variant string
	Tick    uint64
	Phase   core.Phase
	Score   int
	Catches int
	Misses  int
	Won     bool

	Speed       float64
	SpawnChance float64
	WinScore    int
	LoseScore   int

	FieldW, FieldH float64
	Paddle         Paddle
	ObjectSize     float64
	Objects        []FallingObject
	Stars          []Star
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.ensureWorld()
	w := g.world
	return Snapshot{
		Variant: g.variant,
		Tick:    w.ticks,
		Phase:   w.phase,
		Score:   w.score,
		Catches: w.catches,
		Misses:  w.misses,
		Won:     w.won,

		Speed:       w.speed,
		SpawnChance: w.spawner.Chance(),
		WinScore:    g.cfg.Rules.WinScore,
		LoseScore:   g.cfg.Rules.LoseScore,

		FieldW:     g.cfg.Field.Width,
		FieldH:     g.cfg.Field.Height,
		Paddle:     w.paddle,
		ObjectSize: g.cfg.Objects.Size,
		Objects:    append([]FallingObject(nil), w.objects...),
		Stars:      append([]Star(nil), g.stars.Stars()...),
	}
}
