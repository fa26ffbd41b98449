// Package catch implements the falling-object catch game.
// A paddle at the bottom of the field catches objects that fall from the
// top; catches score a point, misses cost one. Bowl, Shield and Missile
// Protector are parameter sets of the same game.
package catch

import (
	"github.com/vovakirdan/missile-protector/internal/config"
	"github.com/vovakirdan/missile-protector/internal/core"
	"github.com/vovakirdan/missile-protector/internal/registry"
)

// Game adapts a World to the registry.Game interface.
type Game struct {
	variant string
	title   string

	cfg        config.CatchConfig
	configured bool

	runtime core.RuntimeConfig
	world   *World
	stars   *Starfield
}

// New creates a game for a variant. It uses the variant's default config
// until Configure is called.
func New(variant string) *Game {
	return &Game{
		variant: variant,
		title:   titleFor(variant),
	}
}

func titleFor(variant string) string {
	switch variant {
	case config.VariantBowl:
		return "Bowl"
	case config.VariantShield:
		return "Shield"
	case config.VariantProtector:
		return "Missile Protector"
	default:
		return variant
	}
}

// ID returns the variant name.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Configure loads the config file (or the search path when empty) and
// applies a difficulty preset. It takes effect on the next Reset.
func (g *Game) Configure(configPath, difficulty string) error {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return err
	}
	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// Config returns the config the game runs with.
func (g *Game) Config() config.CatchConfig {
	g.ensureConfig()
	return g.cfg
}

func (g *Game) ensureConfig() {
	if g.configured {
		return
	}
	cfg, err := config.Load(g.variant, "")
	if err != nil {
		cfg, _ = config.DefaultConfig(g.variant)
	}
	g.cfg = cfg
	g.configured = true
}

// Reset fully initializes a new session: world, starfield and the
// instructions screen when the variant has one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ensureConfig()
	g.runtime = runtime
	g.world = NewWorld(g.cfg, runtime.Seed)
	g.stars = NewStarfield(runtime.Seed, g.cfg.Stars, g.cfg.Field.Width, g.cfg.Field.Height)
}

// ensureWorld starts a session with default runtime settings when Reset
// has not been called yet.
func (g *Game) ensureWorld() {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
}

// Step advances one tick. Stars move in every phase. Instructions only
// accept Confirm, game over only Confirm or Restart.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ensureWorld()
	g.stars.Update()

	var events []core.Event
	switch g.world.Phase() {
	case core.PhaseInstructions:
		if in.Has(core.ActionConfirm) && g.world.Start() {
			events = append(events, core.Event{Kind: core.EventStarted})
		}

	case core.PhasePlaying:
		events = g.world.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight))

	case core.PhaseGameOver:
		if (in.Has(core.ActionConfirm) || in.Has(core.ActionRestart)) && g.world.Restart() {
			events = append(events, core.Event{Kind: core.EventRestarted})
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.ensureWorld()
	return g.world.State()
}

// Register the variants with the registry
func init() {
	for _, variant := range config.Variants {
		registry.Register(variant, func() registry.Game {
			return New(variant)
		})
	}
}
