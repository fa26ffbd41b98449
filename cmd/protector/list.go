package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/config"
	"github.com/vovakirdan/missile-protector/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long: `Shows every registered variant with its win and lose scores and how
its fall speed ramps over the first minute at the current --fps.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-20s  %-10s  %s\n", maxIDLen, "ID", "Title", "Win / Lose", "Ramp")
	fmt.Printf("  %-*s  %-20s  %-10s  %s\n", maxIDLen, "--", "-----", "----------", "----")

	for _, g := range games {
		bounds, ramp := "", ""
		if cfg, ok := config.DefaultConfig(g.ID); ok {
			bounds = fmt.Sprintf("%d / %d", cfg.Rules.WinScore, cfg.Rules.LoseScore)
			ramp = rampSummary(cfg, flagFPS)
		}
		fmt.Printf("  %-*s  %-20s  %-10s  %s\n", maxIDLen, g.ID, g.Title, bounds, ramp)
	}

	fmt.Println()
	fmt.Println("Run 'protector play <id>' to play in the terminal,")
	fmt.Println("or 'protector window <id>' to open a window.")
}

// rampSummary describes the fall speed ramp over one minute of play.
func rampSummary(cfg config.CatchConfig, fps int) string {
	ramp := config.NewRamp(cfg)
	if !ramp.IsEnabled() {
		return "off"
	}
	ticks := uint64(max(fps, 1)) * 60 //#nosec G115 -- clamped positive
	return fmt.Sprintf("speed %.1f -> %.1f after 60s", cfg.Objects.InitialSpeed, ramp.SpeedAfter(ticks))
}
