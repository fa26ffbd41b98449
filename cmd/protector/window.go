package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/games/catch"
	"github.com/vovakirdan/missile-protector/internal/platform/window"
	"github.com/vovakirdan/missile-protector/internal/registry"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window <variant>",
	Short: "Play a variant in a desktop window",
	Long: `Open a desktop window and play the specified variant.

Sprite variants load their images from --assets; a missing or unreadable
image stops the program before the window opens.

Controls:
  Left/A       - Move left
  Right/D      - Move right
  Space/Enter  - Start, or restart after game over
  R            - Restart (after game over)
  Esc          - Quit

Examples:
  protector window protector
  protector window shield --assets ./assets --sound
  protector window bowl --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprite images")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]

	created, err := registry.CreateConfigured(gameID, flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'protector list' to see available games.")
		os.Exit(1)
	}
	game, ok := created.(*catch.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	store := openStore(logger)
	opts := window.Options{
		AssetsDir: flagAssets,
		Store:     store,
		Player:    localPlayer(),
		Logger:    logger,
		TickRate:  flagFPS,
		Seed:      flagSeed,
	}
	player := openSound(logger)
	if player != nil {
		opts.Sink = player
	}

	closeAll := func() {
		if player != nil {
			player.Close()
		}
		if store != nil {
			store.Close()
		}
	}

	w, err := window.New(game, opts)
	if err != nil {
		// Missing sprites are fatal
		logger.Error("cannot start", "game", gameID, "error", err)
		closeAll()
		os.Exit(1)
	}

	runErr := w.Run()
	closeAll()
	if runErr != nil {
		logger.Error("window closed with error", "error", runErr)
		os.Exit(1)
	}
}
