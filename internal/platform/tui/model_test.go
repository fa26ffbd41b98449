package tui

import (
	"maps"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/missile-protector/internal/core"
	"github.com/vovakirdan/missile-protector/internal/storage"
)

// scriptedGame is a registry.Game whose state and events are set by the test.
type scriptedGame struct {
	state  core.GameState
	events []core.Event
	inputs []core.InputFrame
	resets int
}

func (g *scriptedGame) ID() string    { return "protector" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: core.PhaseInstructions}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, core.InputFrame{Actions: maps.Clone(in.Actions)})
	res := core.StepResult{State: g.state, Events: g.events}
	g.events = nil
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }

type recordingSink struct {
	events []core.Event
}

func (s *recordingSink) Handle(e core.Event) {
	s.events = append(s.events, e)
}

func testModel(t *testing.T, game *scriptedGame, opts Options) Model {
	t.Helper()
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, opts)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg{ID: m.tickID})
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelHeldKeyReachesGame(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, Options{HoldTicks: 3})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	for i, in := range game.inputs {
		if want := i < 3; in.Has(core.ActionLeft) != want {
			t.Errorf("tick %d: left held = %v, expected %v", i, in.Has(core.ActionLeft), want)
		}
	}
}

func TestModelOneShotActions(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = tick(t, m)

	if !game.inputs[0].Has(core.ActionConfirm) {
		t.Error("confirm should reach the next tick")
	}
	if game.inputs[1].Has(core.ActionConfirm) {
		t.Error("confirm should be cleared after one tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, Options{})

	m, cmd := send(t, m, TickMsg{ID: m.tickID + 1000})
	if cmd != nil || len(game.inputs) != 0 {
		t.Error("a tick from another model should be ignored")
	}

	_, cmd = send(t, m, TickMsg{ID: m.tickID})
	if cmd == nil || len(game.inputs) != 1 {
		t.Error("own tick should step the game and schedule the next")
	}
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{}
	m := testModel(t, game, Options{Store: store, Player: "alice"})

	game.state = core.GameState{Phase: core.PhasePlaying, Ticks: 10}
	m = tick(t, m)

	game.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true, Won: true, Score: 20, Catches: 22, Misses: 2, Ticks: 900}
	game.events = []core.Event{{Kind: core.EventWon, Score: 20}}
	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	// Restart, then lose
	game.state = core.GameState{Phase: core.PhasePlaying}
	game.events = []core.Event{{Kind: core.EventRestarted}}
	m = tick(t, m)
	game.state = core.GameState{Phase: core.PhaseGameOver, GameOver: true, Score: -3, Misses: 3, Ticks: 300}
	m = tick(t, m)
	m = tick(t, m)

	entries, err := store.PlayerScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 saved rounds, got %d", len(entries))
	}
	// Most recent first
	if entries[0].Outcome != storage.OutcomeLost || entries[0].Score != -3 {
		t.Errorf("second round = %+v, expected lost at -3", entries[0])
	}
	if entries[1].Outcome != storage.OutcomeWon || entries[1].Catches != 22 || entries[1].Ticks != 900 {
		t.Errorf("first round = %+v, expected won with 22 catches", entries[1])
	}
	if m.recorder.Saved() != 2 {
		t.Errorf("recorder saved %d, expected 2", m.recorder.Saved())
	}
}

func TestModelQuitMidRoundRecordsQuit(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{}
	m := testModel(t, game, Options{Store: store})

	game.state = core.GameState{Phase: core.PhasePlaying, Score: 4, Catches: 5, Misses: 1, Ticks: 120}
	m = tick(t, m)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit the program")
	}

	entries, err := store.AllScores("protector")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Outcome != storage.OutcomeQuit || entries[0].Score != 4 {
		t.Errorf("expected one quit record at 4, got %+v", entries)
	}
}

func TestModelQuitFromInstructionsRecordsNothing(t *testing.T) {
	store := openTestStore(t)
	game := &scriptedGame{}
	m := testModel(t, game, Options{Store: store})

	m = tick(t, m)
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	entries, err := store.AllScores("protector")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no round was played, got %+v", entries)
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &scriptedGame{}

	embedded := testModel(t, game, Options{Embedded: true})
	embedded, cmd := send(t, embedded, tea.KeyMsg{Type: tea.KeyEsc})
	if !embedded.BackToMenu() || cmd != nil {
		t.Error("embedded model should flag back without quitting")
	}
	if _, cmd = send(t, embedded, TickMsg{ID: embedded.tickID}); cmd != nil {
		t.Error("ticks should stop after leaving the game")
	}

	standalone := testModel(t, game, Options{})
	standalone, cmd = send(t, standalone, tea.KeyMsg{Type: tea.KeyEsc})
	if !standalone.BackToMenu() || cmd == nil {
		t.Error("standalone model should quit the program to reach the menu")
	}
}

func TestModelForwardsEventsToSink(t *testing.T) {
	sink := &recordingSink{}
	game := &scriptedGame{}
	m := testModel(t, game, Options{Sink: sink})

	game.events = []core.Event{{Kind: core.EventCaught, Score: 1}, {Kind: core.EventMissed, Score: 0}}
	m = tick(t, m)
	tick(t, m)

	if len(sink.events) != 2 || sink.events[0].Kind != core.EventCaught || sink.events[1].Kind != core.EventMissed {
		t.Errorf("sink got %+v", sink.events)
	}
}

func TestModelRestartReleasesHeldKeys(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, Options{HoldTicks: 10})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	game.events = []core.Event{{Kind: core.EventRestarted}}
	m = tick(t, m)
	tick(t, m)

	if game.inputs[1].Has(core.ActionRight) {
		t.Error("held direction should not survive a restart")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := &scriptedGame{}
	m := testModel(t, game, Options{})
	resets := game.resets

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != resets {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should render the game")
	}
}
