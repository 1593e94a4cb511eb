// Package roulette implements the ColoRoulette game core: the level palette
// generator and the session state machine that scores contrast choices.
// It has no Bubble Tea dependency; renderers observe snapshots and send intents.
package roulette

import (
	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/config"
)

// Level defines one row of the level table.
type Level struct {
	Base        color.Color
	Lightnesses []float64 // Perceived lightness (CIE L*) of each wedge, in wheel order
}

// LevelsFromConfig converts the YAML level table.
// Rows whose base color does not parse keep the neutral gray base, so a bad
// entry degrades to gray wedges instead of shortening the table.
func LevelsFromConfig(cfg config.RouletteConfig) []Level {
	levels := make([]Level, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		base, err := color.Parse(lc.Base)
		if err != nil {
			base = color.Gray
		}
		levels[i] = Level{
			Base:        base,
			Lightnesses: append([]float64(nil), lc.Lightnesses...),
		}
	}
	return levels
}

// DefaultLevels returns the built-in level table.
func DefaultLevels() []Level {
	return LevelsFromConfig(config.DefaultRouletteConfig())
}
