package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/platform/sound"
	"github.com/vovakirdan/missile-protector/internal/platform/tui"
	"github.com/vovakirdan/missile-protector/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagHoldTicks  int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant in the terminal",
	Long: `Start playing the specified variant in the terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Enter  - Start, or restart after game over
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Terminals only report key presses, so a direction keeps moving the paddle
for --hold-ticks frames after each press.

Difficulty options:
  easy   - Slower start, gentler ramp
  normal - The variant's own settings
  hard   - Faster start, steeper ramp
  fixed  - No ramp, speed and spawn chance stay at their start values

Examples:
  protector play protector
  protector play shield --difficulty easy
  protector play bowl --sound
  protector play protector --config ./my-protector.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Frames a direction key stays held after a press")
}

// addGameFlags registers the flags shared by play, window and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", sound.DefaultGain, "Sound volume from 0 to 1")
}

// openSound starts the speaker when --sound is set. It returns nil when
// sound is off or no audio device is available.
func openSound(logger *log.Logger) *sound.Player {
	if !flagSound {
		return nil
	}
	player := sound.NewPlayer(flagVolume, logger)
	if err := player.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil
	}
	return player
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'protector list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.CreateConfigured(gameID, flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store := openStore(logger)
	opts := tui.Options{
		Store:     store,
		Player:    localPlayer(),
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	}
	player := openSound(logger)
	if player != nil {
		opts.Sink = player
	}

	_, runErr := tui.Run(game, runtimeConfig(), opts)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
