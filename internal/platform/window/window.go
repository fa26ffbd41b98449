// Package window runs a catch game in a desktop window with Ebitengine.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/missile-protector/internal/core"
	"github.com/vovakirdan/missile-protector/internal/games/catch"
	"github.com/vovakirdan/missile-protector/internal/storage"
)

// EventSink receives the events produced by every tick.
type EventSink interface {
	Handle(e core.Event)
}

// Options configures a window.
type Options struct {
	AssetsDir string         // Directory holding sprite images
	Store     *storage.Store // Optional
	Player    string
	Sink      EventSink // Optional
	Logger    *log.Logger
	TickRate  int
	Seed      int64
}

// Window adapts a catch game to ebiten.Game.
type Window struct {
	game     *catch.Game
	sprites  Sprites
	keys     KeyState
	recorder *storage.Recorder
	sink     EventSink
	logger   *log.Logger
	tickRate int
	overlay  Overlay
	state    core.GameState
	snap     catch.Snapshot
}

// New loads the variant's sprites and resets the game. A sprite that
// cannot be loaded is returned as an error.
func New(game *catch.Game, opts Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	cfg := game.Config()
	sprites, err := LoadSprites(opts.AssetsDir, cfg.Sprites)
	if err != nil {
		return nil, err
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  int(cfg.Field.Width),
		ScreenH:  int(cfg.Field.Height),
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})

	w := &Window{
		game:     game,
		sprites:  sprites,
		keys:     ebitenKeys{},
		recorder: storage.NewRecorder(opts.Store, game.ID(), opts.Player, logger),
		sink:     opts.Sink,
		logger:   logger,
		tickRate: opts.TickRate,
		state:    game.State(),
		snap:     game.Snapshot(),
	}
	w.syncOverlay()
	return w, nil
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	return w.tick(FrameFromKeys(w.keys))
}

// tick runs one step with the given input. Returns ebiten.Termination on quit.
func (w *Window) tick(frame core.InputFrame) error {
	if frame.Has(core.ActionQuit) {
		w.recorder.Abandon(w.state)
		return ebiten.Termination
	}

	res := w.game.Step(frame)
	w.state = res.State
	w.snap = w.game.Snapshot()
	w.recorder.Observe(res)

	if w.sink != nil {
		for _, e := range res.Events {
			w.sink.Handle(e)
		}
	}
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventWon, core.EventLost:
			w.logger.Info("round over", "game", w.game.ID(), "outcome", e.Kind, "score", e.Score)
		case core.EventStarted, core.EventRestarted:
			w.logger.Debug("round started", "game", w.game.ID())
		}
	}

	w.syncOverlay()
	w.overlay.Update(1 / float32(w.tickRate))
	return nil
}

// syncOverlay shows the panel on the instruction and game over screens.
func (w *Window) syncOverlay() {
	if w.state.Phase == core.PhasePlaying {
		w.overlay.Hide()
	} else {
		w.overlay.Show()
	}
}

// Layout keeps the logical field size; Ebitengine scales it to the window.
func (w *Window) Layout(int, int) (int, int) {
	return int(w.snap.FieldW), int(w.snap.FieldH)
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	ebiten.SetWindowSize(int(w.snap.FieldW), int(w.snap.FieldH))
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.tickRate)

	err := ebiten.RunGame(w)
	// Closing the window mid-round counts as quitting it
	w.recorder.Abandon(w.state)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
