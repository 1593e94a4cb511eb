package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/roulette.yaml
var defaultRouletteYAML []byte

// DefaultRouletteConfig returns the built-in level table and timings.
// It matches defaults/roulette.yaml and is used if the embedded file fails to parse.
func DefaultRouletteConfig() RouletteConfig {
	bright := []float64{25, 75, 100}
	dark := []float64{0, 25, 75}
	four := []float64{20, 60, 40, 80}
	six := []float64{25, 65, 45, 55, 35, 75}

	bases := []string{"blue", "green", "red", "cyan", "pink", "yellow"}
	levels := make([]LevelConfig, 0, 3*len(bases))
	for i, b := range bases {
		first := bright
		if i%2 == 1 {
			first = dark
		}
		levels = append(levels, LevelConfig{Base: b, Lightnesses: first})
	}
	for _, b := range bases {
		levels = append(levels, LevelConfig{Base: b, Lightnesses: four})
	}
	for _, b := range bases {
		levels = append(levels, LevelConfig{Base: b, Lightnesses: six})
	}

	return RouletteConfig{
		Levels: levels,
		Timing: TimingConfig{
			ChoiceSeconds: 10,
			TickInterval:  time.Second,
			SpinDuration:  3 * time.Second,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRouletteYAML
}
