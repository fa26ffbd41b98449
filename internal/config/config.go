// Package config provides YAML-based game configuration loading,
// variant defaults, and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// CatchConfig contains all tunables of the falling-object game.
// Distances are logical field units; speeds and increments are per frame.
type CatchConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Objects ObjectsConfig `yaml:"objects"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Rules   RulesConfig   `yaml:"rules"`
	Stars   StarsConfig   `yaml:"stars"`
	Sprites SpritesConfig `yaml:"sprites"`
}

// FieldConfig defines the logical playing field.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the player-controlled catcher.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"`          // Distance moved per frame a direction is held
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle and bottom edge
}

// ObjectsConfig defines falling objects and the world speed ramp.
type ObjectsConfig struct {
	Size           float64 `yaml:"size"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxSpeed       float64 `yaml:"max_speed"` // 0 = uncapped
}

// SpawnConfig defines the per-frame spawn chance and its ramp.
type SpawnConfig struct {
	InitialChance   float64 `yaml:"initial_chance"`
	ChanceIncrement float64 `yaml:"chance_increment"`
	MaxChance       float64 `yaml:"max_chance"` // 0 = uncapped (still never above 1)
}

// RulesConfig defines scoring thresholds and the optional instructions screen.
type RulesConfig struct {
	WinScore         int  `yaml:"win_score"`
	LoseScore        int  `yaml:"lose_score"`
	ShowInstructions bool `yaml:"show_instructions"`
}

// StarsConfig defines the decorative background.
type StarsConfig struct {
	Count         int     `yaml:"count"`
	MinSize       int     `yaml:"min_size"`
	MaxSize       int     `yaml:"max_size"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinBrightness int     `yaml:"min_brightness"`
	MaxBrightness int     `yaml:"max_brightness"`
}

// SpritesConfig names the image files used by graphical frontends.
// Empty names mean the frontend draws plain shapes.
type SpritesConfig struct {
	Object string `yaml:"object"`
	Paddle string `yaml:"paddle"`
}

// UsesSprites reports whether a graphical frontend must load image assets.
func (c SpritesConfig) UsesSprites() bool {
	return c.Object != "" || c.Paddle != ""
}

// Validate checks that the config describes a playable game.
func (c CatchConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive size", ErrInvalidConfig)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size", ErrInvalidConfig)
	case c.Paddle.Width > c.Field.Width:
		return fmt.Errorf("%w: paddle wider than field", ErrInvalidConfig)
	case c.Paddle.Height+c.Paddle.BottomMargin > c.Field.Height:
		return fmt.Errorf("%w: paddle does not fit in field", ErrInvalidConfig)
	case c.Paddle.Step < 0:
		return fmt.Errorf("%w: paddle step must not be negative", ErrInvalidConfig)
	case c.Objects.Size <= 0 || c.Objects.Size > c.Field.Width:
		return fmt.Errorf("%w: object size must be in (0, field width]", ErrInvalidConfig)
	case c.Objects.InitialSpeed <= 0:
		return fmt.Errorf("%w: objects must fall with positive speed", ErrInvalidConfig)
	case c.Objects.SpeedIncrement < 0:
		return fmt.Errorf("%w: speed increment must not be negative", ErrInvalidConfig)
	case c.Objects.MaxSpeed < 0 || (c.Objects.MaxSpeed > 0 && c.Objects.MaxSpeed < c.Objects.InitialSpeed):
		return fmt.Errorf("%w: max speed must be 0 or at least the initial speed", ErrInvalidConfig)
	case c.Spawn.InitialChance < 0 || c.Spawn.InitialChance > 1:
		return fmt.Errorf("%w: spawn chance must be in [0, 1]", ErrInvalidConfig)
	case c.Spawn.ChanceIncrement < 0:
		return fmt.Errorf("%w: spawn chance increment must not be negative", ErrInvalidConfig)
	case c.Spawn.MaxChance < 0 || c.Spawn.MaxChance > 1:
		return fmt.Errorf("%w: max spawn chance must be in [0, 1]", ErrInvalidConfig)
	case c.Rules.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive", ErrInvalidConfig)
	case c.Rules.LoseScore >= 0:
		return fmt.Errorf("%w: lose score must be negative", ErrInvalidConfig)
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: star count must not be negative", ErrInvalidConfig)
	case c.Stars.MinSize > c.Stars.MaxSize || c.Stars.MinSpeed > c.Stars.MaxSpeed ||
		c.Stars.MinBrightness > c.Stars.MaxBrightness:
		return fmt.Errorf("%w: star ranges must have min <= max", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI string into a preset. The empty string means
// "use the config as loaded" and maps to normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Describe returns a one-line description for menus and help text.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "Lower win target, ramps at half speed"
	case DifficultyNormal:
		return "As configured"
	case DifficultyHard:
		return "Less room for misses, ramps twice as fast"
	case DifficultyFixed:
		return "No speed or spawn ramp"
	default:
		return ""
	}
}

// ApplyPreset modifies the config for a difficulty preset.
func ApplyPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.WinScore = max(1, cfg.Rules.WinScore*3/4)
		cfg.Objects.SpeedIncrement *= 0.5
		cfg.Spawn.ChanceIncrement *= 0.5
	case DifficultyHard:
		cfg.Rules.LoseScore = min(-1, cfg.Rules.LoseScore+1)
		cfg.Objects.SpeedIncrement *= 2
		cfg.Spawn.ChanceIncrement *= 2
	case DifficultyFixed:
		cfg.Objects.SpeedIncrement = 0
		cfg.Spawn.ChanceIncrement = 0
	}
}
