package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/missile-protector/internal/core"
)

// Recorder saves each finished round of one game exactly once.
// A nil store makes it a no-op that still tracks rounds.
// Safe for use from the connection goroutine after the game loop stops.
type Recorder struct {
	store  *Store
	gameID string
	player string
	logger *log.Logger

	mu    sync.Mutex
	last  core.GameState
	saved bool
	count int
}

// NewRecorder creates a recorder for a game and player.
func NewRecorder(store *Store, gameID, player string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:  store,
		gameID: gameID,
		player: player,
		logger: logger,
	}
}

// Observe inspects a tick result. A new round clears the saved flag and a
// won or lost round is recorded.
func (r *Recorder) Observe(res core.StepResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = res.State
	if res.Has(core.EventStarted) || res.Has(core.EventRestarted) {
		r.saved = false
	}
	if !res.State.GameOver || r.saved {
		return
	}

	outcome := OutcomeLost
	if res.State.Won {
		outcome = OutcomeWon
	}
	r.save(res.State, outcome)
}

// Abandon records a round left mid-play. Rounds that never ticked are skipped.
func (r *Recorder) Abandon(st core.GameState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.abandon(st)
}

// AbandonLast records the last observed state as a round left mid-play,
// for when the player disconnects without a key press.
func (r *Recorder) AbandonLast() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.abandon(r.last)
}

func (r *Recorder) abandon(st core.GameState) {
	if r.saved || st.Phase != core.PhasePlaying || st.Ticks == 0 {
		return
	}
	r.save(st, OutcomeQuit)
}

func (r *Recorder) save(st core.GameState, outcome Outcome) {
	r.saved = true
	if r.store == nil {
		return
	}

	_, err := r.store.SaveResult(Result{
		GameID:  r.gameID,
		Player:  r.player,
		Score:   st.Score,
		Catches: st.Catches,
		Misses:  st.Misses,
		Outcome: outcome,
		Ticks:   st.Ticks,
	})
	if err != nil {
		r.logger.Warn("could not save result", "game", r.gameID, "error", err)
		return
	}
	r.count++
	r.logger.Debug("result saved", "game", r.gameID, "player", r.player, "score", st.Score, "outcome", outcome)
}

// Saved returns the number of results written so far.
func (r *Recorder) Saved() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
