package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change how long the player has to choose.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ChoiceSecondsForPreset returns the countdown start value for a preset.
func ChoiceSecondsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 15
	case DifficultyHard:
		return 6
	default:
		return 10
	}
}

// ApplyRoulettePreset modifies the config based on a difficulty preset.
// Normal keeps whatever the config file chose.
func ApplyRoulettePreset(cfg *RouletteConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyHard:
		cfg.Timing.ChoiceSeconds = ChoiceSecondsForPreset(preset)
	}
}
