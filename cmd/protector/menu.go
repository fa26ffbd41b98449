package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/platform/tui"
	"github.com/vovakirdan/missile-protector/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, then pick a
difficulty. Pressing B during a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  protector menu
  protector menu --difficulty hard
  protector menu --fps 30 --sound`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store := openStore(logger)
	player := openSound(logger)

	opts := tui.Options{
		Store:  store,
		Player: localPlayer(),
		Logger: logger,
	}
	if player != nil {
		opts.Sink = player
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// --difficulty skips the picker
		difficulty := flagDifficulty
		if difficulty == "" {
			title := gameID
			for _, g := range registry.List() {
				if g.ID == gameID {
					title = g.Title
				}
			}
			sel, selErr := tui.RunDifficultySelector(title, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if sel.Quit {
				break
			}
			if sel.Back {
				continue
			}
			difficulty = string(sel.Preset)
		}

		game, err := registry.CreateConfigured(gameID, flagConfig, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			logger.Error("cannot start game", "game", gameID, "error", err)
			continue
		}

		// A fresh seed per round unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("game started", "game", gameID, "difficulty", difficulty)
		backToMenu, runErr := tui.Run(game, cfg, opts)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}
		if !backToMenu {
			break
		}
	}

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}
}
