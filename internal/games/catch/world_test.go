package catch

import (
	"math"
	"testing"

	"github.com/vovakirdan/missile-protector/internal/config"
	"github.com/vovakirdan/missile-protector/internal/core"
)

// quietConfig is the protector config without spawning or instructions,
// so tests can place objects by hand.
func quietConfig() config.CatchConfig {
	cfg := config.DefaultProtectorConfig()
	cfg.Spawn = config.SpawnConfig{}
	cfg.Rules.ShowInstructions = false
	return cfg
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestNewWorldInitialState(t *testing.T) {
	cfg := config.DefaultProtectorConfig()
	w := NewWorld(cfg, 1)

	if w.Phase() != core.PhaseInstructions {
		t.Errorf("protector should start on instructions, got %v", w.Phase())
	}
	if w.paddle.X != 350 || w.paddle.Y != 490 {
		t.Errorf("paddle at (%f, %f), expected (350, 490)", w.paddle.X, w.paddle.Y)
	}
	if w.speed != 3 {
		t.Errorf("speed = %f, expected 3", w.speed)
	}
	if w.spawner.Chance() != 0.0019 {
		t.Errorf("spawn chance = %f, expected 0.0019", w.spawner.Chance())
	}

	bowl := NewWorld(config.DefaultBowlConfig(), 1)
	if bowl.Phase() != core.PhasePlaying {
		t.Errorf("bowl should start playing, got %v", bowl.Phase())
	}
	if bowl.paddle.Y != 570 {
		t.Errorf("bowl paddle y = %f, expected 570", bowl.paddle.Y)
	}
}

func TestUpdateIgnoredOutsidePlaying(t *testing.T) {
	w := NewWorld(config.DefaultProtectorConfig(), 1)
	w.objects = append(w.objects, FallingObject{X: 0, Y: 0})

	if events := w.Update(true, false); events != nil {
		t.Errorf("Update during instructions returned events %v", events)
	}
	if w.objects[0].Y != 0 || w.paddle.X != 350 || w.ticks != 0 {
		t.Error("Update during instructions should not change the world")
	}
}

func TestPaddleClamp(t *testing.T) {
	cfg := quietConfig()
	w := NewWorld(cfg, 1)
	maxX := cfg.Field.Width - cfg.Paddle.Width

	for i := 0; i < 200; i++ {
		w.Update(true, false)
		if w.paddle.X < 0 || w.paddle.X > maxX {
			t.Fatalf("frame %d: paddle x %f outside [0, %f]", i, w.paddle.X, maxX)
		}
	}
	if w.paddle.X != 0 {
		t.Errorf("paddle should rest at 0, got %f", w.paddle.X)
	}

	for i := 0; i < 200; i++ {
		w.Update(false, true)
		if w.paddle.X < 0 || w.paddle.X > maxX {
			t.Fatalf("frame %d: paddle x %f outside [0, %f]", i, w.paddle.X, maxX)
		}
	}
	if w.paddle.X != maxX {
		t.Errorf("paddle should rest at %f, got %f", maxX, w.paddle.X)
	}
}

func TestPaddleStep(t *testing.T) {
	w := NewWorld(quietConfig(), 1)

	w.Update(true, false)
	if w.paddle.X != 345 {
		t.Errorf("left step: x = %f, expected 345", w.paddle.X)
	}
	w.Update(false, true)
	w.Update(false, true)
	if w.paddle.X != 355 {
		t.Errorf("right steps: x = %f, expected 355", w.paddle.X)
	}
	w.Update(true, true)
	if w.paddle.X != 355 {
		t.Errorf("both held should cancel out: x = %f, expected 355", w.paddle.X)
	}
}

func TestCatch(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.objects = append(w.objects, FallingObject{X: 368, Y: 426})

	events := w.Update(false, false)

	if w.score != 1 || w.catches != 1 || w.misses != 0 {
		t.Errorf("score=%d catches=%d misses=%d, expected 1/1/0", w.score, w.catches, w.misses)
	}
	if len(w.objects) != 0 {
		t.Errorf("caught object should be removed, %d left", len(w.objects))
	}
	if countEvents(events, core.EventCaught) != 1 {
		t.Errorf("expected one caught event, got %v", events)
	}
}

func TestTouchingIsNotCatch(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	// After moving 3 units the object's bottom edge sits exactly on the paddle top
	w.objects = append(w.objects, FallingObject{X: 368, Y: 423})

	w.Update(false, false)

	if w.score != 0 || len(w.objects) != 1 {
		t.Errorf("touching edges should not collide: score=%d objects=%d", w.score, len(w.objects))
	}
}

func TestMiss(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.objects = append(w.objects,
		FallingObject{X: 0, Y: 599}, // 602 after moving: gone
		FallingObject{X: 0, Y: 597}, // exactly 600: still in play
	)

	events := w.Update(false, false)

	if w.score != -1 || w.misses != 1 {
		t.Errorf("score=%d misses=%d, expected -1/1", w.score, w.misses)
	}
	if len(w.objects) != 1 || w.objects[0].Y != 600 {
		t.Errorf("object at the bottom edge should remain, got %+v", w.objects)
	}
	if countEvents(events, core.EventMissed) != 1 {
		t.Errorf("expected one missed event, got %v", events)
	}
}

func TestWinExactlyAtThreshold(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.score = 19
	w.objects = append(w.objects,
		FallingObject{X: 360, Y: 430},
		FallingObject{X: 380, Y: 430},
	)

	events := w.Update(false, false)

	if w.score != 20 {
		t.Errorf("score = %d, expected to stop at 20", w.score)
	}
	if w.Phase() != core.PhaseGameOver || !w.State().Won {
		t.Errorf("expected won game over, got %+v", w.State())
	}
	if len(w.objects) != 1 || w.objects[0].Y != 430 {
		t.Errorf("unprocessed object should stay frozen, got %+v", w.objects)
	}
	if countEvents(events, core.EventWon) != 1 {
		t.Errorf("expected one won event, got %v", events)
	}
}

func TestLoseExactlyAtThreshold(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.score = -2
	w.objects = append(w.objects,
		FallingObject{X: 0, Y: 598},
		FallingObject{X: 100, Y: 598},
	)
	speed := w.speed

	events := w.Update(true, false)

	if w.score != -3 {
		t.Errorf("score = %d, expected to stop at -3", w.score)
	}
	if w.Phase() != core.PhaseGameOver || w.State().Won {
		t.Errorf("expected lost game over, got %+v", w.State())
	}
	if len(w.objects) != 1 || w.objects[0].Y != 598 {
		t.Errorf("unprocessed object should stay frozen, got %+v", w.objects)
	}
	if countEvents(events, core.EventLost) != 1 {
		t.Errorf("expected one lost event, got %v", events)
	}
	if w.speed != speed || w.paddle.X != 350 {
		t.Error("a finished frame should not ramp speed or move the paddle")
	}
}

func TestNoUpdatesAfterGameOver(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.score = 19
	w.objects = append(w.objects, FallingObject{X: 368, Y: 426})
	w.Update(false, false)

	snapshotScore, ticks := w.score, w.ticks
	for i := 0; i < 10; i++ {
		w.Update(true, false)
	}
	if w.score != snapshotScore || w.ticks != ticks {
		t.Error("game over world should not advance")
	}
}

func TestEventualRemoval(t *testing.T) {
	w := NewWorld(quietConfig(), 1)
	w.objects = append(w.objects, FallingObject{X: 0, Y: -64})

	// (600 + 64) / 3 frames at the slowest speed
	limit := 222
	for i := 0; i <= limit; i++ {
		w.Update(false, false)
		if len(w.objects) == 0 {
			return
		}
	}
	t.Fatalf("object still in play after %d frames: %+v", limit, w.objects)
}

func TestSpeedAndChanceRamp(t *testing.T) {
	cfg := config.DefaultProtectorConfig()
	cfg.Rules.ShowInstructions = false
	// Keep the score away from the bounds
	cfg.Rules.WinScore = 1000
	cfg.Rules.LoseScore = -1000
	w := NewWorld(cfg, 3)

	const frames = 500
	for i := 0; i < frames; i++ {
		w.Update(false, false)
	}

	wantSpeed := cfg.Objects.InitialSpeed + frames*cfg.Objects.SpeedIncrement
	if math.Abs(w.speed-wantSpeed) > 1e-9 {
		t.Errorf("speed = %f, expected %f", w.speed, wantSpeed)
	}
	wantChance := cfg.Spawn.InitialChance + frames*cfg.Spawn.ChanceIncrement
	if math.Abs(w.spawner.Chance()-wantChance) > 1e-9 {
		t.Errorf("chance = %f, expected %f", w.spawner.Chance(), wantChance)
	}
}

func TestScoreIsCatchesMinusMisses(t *testing.T) {
	cfg := config.DefaultShieldConfig()
	cfg.Spawn.InitialChance = 0.05
	w := NewWorld(cfg, 99)

	rounds := 0
	for i := 0; i < 20000 && rounds < 5; i++ {
		// Sweep the paddle back and forth
		left := (i/150)%2 == 0
		w.Update(left, !left)

		st := w.State()
		if st.Score != st.Catches-st.Misses {
			t.Fatalf("frame %d: score %d != catches %d - misses %d", i, st.Score, st.Catches, st.Misses)
		}
		if st.Score > cfg.Rules.WinScore || st.Score < cfg.Rules.LoseScore {
			t.Fatalf("frame %d: score %d crossed a bound", i, st.Score)
		}
		if st.GameOver {
			rounds++
			w.Restart()
		}
	}
	if rounds == 0 {
		t.Error("expected at least one finished round")
	}
}

func TestRestartResetsState(t *testing.T) {
	cfg := config.DefaultProtectorConfig()
	cfg.Rules.ShowInstructions = false
	cfg.Rules.LoseScore = -1000
	w := NewWorld(cfg, 5)

	for i := 0; i < 300; i++ {
		w.Update(true, false)
	}
	w.objects = append(w.objects, FallingObject{X: 10, Y: 10})
	w.score = 4
	w.catches = 6
	w.misses = 2

	if w.Restart() {
		t.Fatal("Restart should be refused while playing")
	}

	w.phase = core.PhaseGameOver
	w.won = true
	if !w.Restart() {
		t.Fatal("Restart should be accepted after game over")
	}

	st := w.State()
	if st.Score != 0 || st.Catches != 0 || st.Misses != 0 || st.Ticks != 0 || st.Won {
		t.Errorf("counters not reset: %+v", st)
	}
	if st.Phase != core.PhasePlaying {
		t.Errorf("restart should go straight to playing, got %v", st.Phase)
	}
	if len(w.objects) != 0 {
		t.Errorf("objects not cleared: %d left", len(w.objects))
	}
	if w.speed != cfg.Objects.InitialSpeed {
		t.Errorf("speed = %f, expected %f", w.speed, cfg.Objects.InitialSpeed)
	}
	if w.spawner.Chance() != cfg.Spawn.InitialChance {
		t.Errorf("chance = %f, expected %f", w.spawner.Chance(), cfg.Spawn.InitialChance)
	}
	if w.paddle.X != 350 {
		t.Errorf("paddle x = %f, expected 350", w.paddle.X)
	}
}

func TestStartOnlyFromInstructions(t *testing.T) {
	w := NewWorld(config.DefaultProtectorConfig(), 1)
	if !w.Start() {
		t.Fatal("Start should leave instructions")
	}
	if w.Start() {
		t.Error("Start should be a no-op while playing")
	}
}

func TestSpawner(t *testing.T) {
	cfg := config.DefaultShieldConfig()
	cfg.Spawn.InitialChance = 1
	s := NewSpawner(11, cfg, config.NewRamp(cfg))

	for i := 0; i < 500; i++ {
		obj, ok := s.Roll()
		if !ok {
			t.Fatal("chance 1 should always spawn")
		}
		if obj.X < 0 || obj.X > cfg.Field.Width-cfg.Objects.Size {
			t.Fatalf("spawn x %f outside [0, %f]", obj.X, cfg.Field.Width-cfg.Objects.Size)
		}
		if obj.Y != -cfg.Objects.Size {
			t.Fatalf("spawn y = %f, expected %f", obj.Y, -cfg.Objects.Size)
		}
	}

	cfg.Spawn.InitialChance = 0
	never := NewSpawner(11, cfg, config.NewRamp(cfg))
	for i := 0; i < 500; i++ {
		if _, ok := never.Roll(); ok {
			t.Fatal("chance 0 should never spawn")
		}
	}
}

func TestStarfieldWraps(t *testing.T) {
	cfg := config.DefaultStars()
	f := NewStarfield(1, cfg, 800, 600)
	if len(f.Stars()) != cfg.Count {
		t.Fatalf("expected %d stars, got %d", cfg.Count, len(f.Stars()))
	}

	f.stars[0].Y = 599.9
	f.stars[0].Speed = 1
	f.Update()

	if f.stars[0].Y != 0 {
		t.Errorf("star should wrap to the top, y = %f", f.stars[0].Y)
	}
	for i, s := range f.Stars() {
		if s.Brightness < cfg.MinBrightness || s.Brightness > cfg.MaxBrightness {
			t.Errorf("star %d brightness %d out of range", i, s.Brightness)
		}
		if s.Size < cfg.MinSize || s.Size > cfg.MaxSize {
			t.Errorf("star %d size %d out of range", i, s.Size)
		}
	}
}
