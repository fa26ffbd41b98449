package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/registry"
	"github.com/vovakirdan/missile-protector/internal/storage"
)

var (
	flagScoresLimit int
	flagPlayer      string
	flagClear       bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded results",
	Long: `Display the best results for a variant, the recent results of one
player, or a summary of every variant when no arguments are given.

Examples:
  protector scores
  protector scores protector
  protector scores shield --limit 20
  protector scores shield --all
  protector scores --player alice
  protector scores bowl --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the recent results of a player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every result of the variant")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every result of the variant, ignoring --limit")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagPlayer != "":
		err = printPlayer(store, flagPlayer)
	case len(args) == 0:
		err = printSummary(store)
	default:
		err = printVariant(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printVariant(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'protector list')", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all results for %s.\n", game.Title())
		return nil
	}

	scores, err := variantScores(store, gameID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'protector play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %6s  %-6s  %s\n", "Rank", "Player", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %6s  %-6s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %6d  %-6s  %s\n",
			i+1, playerName(e.Player), e.Score, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Played: %d   Won: %d   Lost: %d   Caught: %d   Missed: %d\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses, stats.TotalCatches, stats.TotalMisses)
	return nil
}

func variantScores(store *storage.Store, gameID string) ([]storage.ScoreEntry, error) {
	if flagAllScores {
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, flagScoresLimit)
}

func printPlayer(store *storage.Store, player string) error {
	scores, err := store.PlayerScores(player, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent results - %s\n", player)
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %6s  %-6s  %7s  %6s  %s\n", "Variant", "Score", "Result", "Caught", "Missed", "Date")
	fmt.Printf("  %-10s  %6s  %-6s  %7s  %6s  %s\n", "-------", "-----", "------", "------", "------", "----")
	for _, e := range scores {
		fmt.Printf("  %-10s  %6d  %-6s  %7d  %6d  %s\n",
			e.GameID, e.Score, e.Outcome, e.Catches, e.Misses, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %6s  %4s  %4s  %4s  %6s\n", "Variant", "Played", "Won", "Lost", "Best", "Avg")
	fmt.Printf("  %-10s  %6s  %4s  %4s  %4s  %6s\n", "-------", "------", "---", "----", "----", "---")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %6d  %4d  %4d  %4d  %6.1f\n", id, s.GamesCount, s.Wins, s.Losses, s.HighScore, s.AvgScore)
	}
	return nil
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}
