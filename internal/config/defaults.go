package config

import (
	_ "embed"
)

// Variant names. Each one is registered as its own game.
const (
	VariantBowl      = "bowl"
	VariantShield    = "shield"
	VariantProtector = "protector"
)

// Variants lists every built-in variant.
var Variants = []string{VariantBowl, VariantShield, VariantProtector}

//go:embed defaults/bowl.yaml
var defaultBowlYAML []byte

//go:embed defaults/shield.yaml
var defaultShieldYAML []byte

//go:embed defaults/protector.yaml
var defaultProtectorYAML []byte

// DefaultStars returns the starfield shared by all variants.
func DefaultStars() StarsConfig {
	return StarsConfig{
		Count:         100,
		MinSize:       1,
		MaxSize:       3,
		MinSpeed:      0.5,
		MaxSpeed:      2.0,
		MinBrightness: 50,
		MaxBrightness: 255,
	}
}

// DefaultProtectorConfig returns the hard-coded Missile Protector defaults.
func DefaultProtectorConfig() CatchConfig {
	return CatchConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       100,
			Step:         5,
			BottomMargin: 10,
		},
		Objects: ObjectsConfig{
			Size:           64,
			InitialSpeed:   3,
			SpeedIncrement: 0.001,
		},
		Spawn: SpawnConfig{
			InitialChance:   0.0019,
			ChanceIncrement: 0.00001,
		},
		Rules: RulesConfig{
			WinScore:         20,
			LoseScore:        -3,
			ShowInstructions: true,
		},
		Stars:   DefaultStars(),
		Sprites: SpritesConfig{Object: "missile.png", Paddle: "shield.png"},
	}
}

// DefaultShieldConfig returns the hard-coded Shield defaults.
func DefaultShieldConfig() CatchConfig {
	cfg := DefaultProtectorConfig()
	cfg.Spawn = SpawnConfig{InitialChance: 0.02}
	cfg.Rules = RulesConfig{WinScore: 10, LoseScore: -3}
	return cfg
}

// DefaultBowlConfig returns the hard-coded Bowl defaults.
func DefaultBowlConfig() CatchConfig {
	cfg := DefaultShieldConfig()
	cfg.Paddle.Height = 20
	cfg.Objects.Size = 32
	cfg.Sprites = SpritesConfig{}
	return cfg
}

// DefaultConfig returns the hard-coded defaults for a variant.
func DefaultConfig(variant string) (CatchConfig, bool) {
	switch variant {
	case VariantBowl:
		return DefaultBowlConfig(), true
	case VariantShield:
		return DefaultShieldConfig(), true
	case VariantProtector:
		return DefaultProtectorConfig(), true
	default:
		return CatchConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantBowl:
		return defaultBowlYAML
	case VariantShield:
		return defaultShieldYAML
	case VariantProtector:
		return defaultProtectorYAML
	default:
		return nil
	}
}
