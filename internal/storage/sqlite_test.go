package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		saveScore(t, store, "shield", score)
	}
	saveScore(t, store, "bowl", 7)

	scores, err := store.TopScores("shield", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	// Bare scores carry no outcome
	if scores[0].Outcome != "" || scores[0].Player != "" {
		t.Errorf("bare result should leave outcome and player empty: %+v", scores[0])
	}

	bowlScores, err := store.TopScores("bowl", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bowlScores) != 1 {
		t.Errorf("Expected 1 bowl score, got %d", len(bowlScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		saveScore(t, store, "protector", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("protector", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("shield")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	saveScore(t, store, "shield", 100)
	saveScore(t, store, "shield", 300)
	saveScore(t, store, "shield", 200)

	high, err = store.HighScore("shield")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "shield", 100)
	saveScore(t, store, "shield", 200)
	saveScore(t, store, "bowl", 300)

	// Clear only shield scores
	if err := store.ClearScores("shield"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Shield should be empty
	shieldScores, _ := store.TopScores("shield", 10)
	if len(shieldScores) != 0 {
		t.Errorf("Expected 0 shield scores after clear, got %d", len(shieldScores))
	}

	// Bowl should still have scores
	bowlScores, _ := store.TopScores("bowl", 10)
	if len(bowlScores) != 1 {
		t.Errorf("Bowl scores should not be affected by clearing shield")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	// Add many scores
	for i := 0; i < 20; i++ {
		saveScore(t, store, "protector", i*10)
	}

	scores, err := store.AllScores("protector")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// saveScore records a bare score with no player or outcome.
func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveResult(Result{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	r := Result{
		GameID:  "protector",
		Player:  "alice",
		Score:   20,
		Catches: 22,
		Misses:  2,
		Outcome: OutcomeWon,
		Ticks:   5400,
	}
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive id, got %d", id)
	}

	entries, err := store.TopScores("protector", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Player != "alice" || e.Score != 20 || e.Catches != 22 || e.Misses != 2 ||
		e.Outcome != OutcomeWon || e.Ticks != 5400 {
		t.Errorf("entry does not round-trip: %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	if _, err := store.SaveResult(Result{Score: 1}); err == nil {
		t.Error("result without game id should fail")
	}
}

func TestStoreNegativeScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "bowl", Score: -3, Misses: 3, Outcome: OutcomeLost})
	store.SaveResult(Result{GameID: "bowl", Score: -1, Catches: 2, Misses: 3, Outcome: OutcomeQuit})

	high, err := store.HighScore("bowl")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != -1 {
		t.Errorf("expected high score -1, got %d", high)
	}

	scores, _ := store.TopScores("bowl", 10)
	if len(scores) != 2 || scores[0].Score != -1 || scores[1].Score != -3 {
		t.Errorf("negative scores not ordered: %+v", scores)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "shield", Score: 10, Catches: 12, Misses: 2, Outcome: OutcomeWon})
	store.SaveResult(Result{GameID: "shield", Score: -3, Catches: 1, Misses: 4, Outcome: OutcomeLost})
	store.SaveResult(Result{GameID: "shield", Score: 2, Catches: 2, Outcome: OutcomeQuit})
	store.SaveResult(Result{GameID: "bowl", Score: 10, Catches: 10, Outcome: OutcomeWon})

	stats, err := store.GetGameStats("shield")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 10 || stats.TotalScore != 9 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %f, expected 3", stats.AvgScore)
	}
	if stats.Wins != 1 || stats.Losses != 1 {
		t.Errorf("wins/losses = %d/%d, expected 1/1", stats.Wins, stats.Losses)
	}
	if stats.TotalCatches != 15 || stats.TotalMisses != 6 {
		t.Errorf("catches/misses = %d/%d, expected 15/6", stats.TotalCatches, stats.TotalMisses)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("protector")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats should be zero: %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["bowl"].Wins != 1 || all["shield"].GamesCount != 3 {
		t.Errorf("unexpected per-game stats: bowl=%+v shield=%+v", all["bowl"], all["shield"])
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{GameID: "shield", Player: "alice", Score: 4})
	store.SaveResult(Result{GameID: "bowl", Player: "bob", Score: 7})
	store.SaveResult(Result{GameID: "protector", Player: "alice", Score: 9})

	scores, err := store.PlayerScores("alice", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 entries for alice, got %d", len(scores))
	}
	// Most recent first
	if scores[0].GameID != "protector" || scores[1].GameID != "shield" {
		t.Errorf("unexpected order: %+v", scores)
	}
}
