// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import "fmt"

// T2048Config contains all tuning for the 2048 game.
type T2048Config struct {
	Spawn   T2048Spawn   `yaml:"spawn"`
	Display T2048Display `yaml:"display"`
}

// T2048Spawn controls random tile placement.
type T2048Spawn struct {
	FourProbability float64 `yaml:"four_probability"` // 0.0-1.0
}

// T2048Display controls the minimum terminal size.
type T2048Display struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// Validate reports the first invalid field.
func (c T2048Config) Validate() error {
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: spawn.four_probability must be within [0, 1], got %v", c.Spawn.FourProbability)
	}
	if c.Display.MinWidth < 0 || c.Display.MinHeight < 0 {
		return fmt.Errorf("config: display size must not be negative, got %dx%d", c.Display.MinWidth, c.Display.MinHeight)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name from the command line.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyDefault, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// FourProbabilityForPreset returns the spawn-4 probability for a preset.
// The second result is false for the default preset, which keeps the file value.
func FourProbabilityForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.05, true
	case DifficultyNormal:
		return 0.10, true
	case DifficultyHard:
		return 0.20, true
	default:
		return 0, false
	}
}
