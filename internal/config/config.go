// Package config provides YAML-based game configuration loading and
// difficulty presets for ColoRoulette.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/coloroulette/internal/color"
)

// RouletteConfig contains all configuration for a ColoRoulette session.
type RouletteConfig struct {
	Levels []LevelConfig `yaml:"levels"`
	Timing TimingConfig  `yaml:"timing"`
}

// LevelConfig is one row of the level table: a base color and the ordered
// perceived lightness (CIE L*, percent) of each wedge.
type LevelConfig struct {
	Base        string    `yaml:"base"`        // Color name or #rrggbb
	Lightnesses []float64 `yaml:"lightnesses"` // One entry per wedge
}

// TimingConfig defines the countdown and spin timings.
type TimingConfig struct {
	ChoiceSeconds int           `yaml:"choice_seconds"` // Countdown start value
	TickInterval  time.Duration `yaml:"tick_interval"`  // Countdown decrement period
	SpinDuration  time.Duration `yaml:"spin_duration"`  // Renderer spin animation length
}

// Validate reports every problem found in the configuration.
// An empty level table is not an error: the session falls back to a gray wedge.
func (c RouletteConfig) Validate() error {
	var errs []error
	for i, lvl := range c.Levels {
		if _, err := color.Parse(lvl.Base); err != nil {
			errs = append(errs, fmt.Errorf("config: level %d: %w", i+1, err))
		}
		for _, l := range lvl.Lightnesses {
			if l < 0 || l > 100 {
				errs = append(errs, fmt.Errorf("config: level %d: lightness %v outside [0, 100]", i+1, l))
			}
		}
	}
	if c.Timing.ChoiceSeconds <= 0 {
		errs = append(errs, fmt.Errorf("config: choice_seconds must be positive, got %d", c.Timing.ChoiceSeconds))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Timing.SpinDuration < 0 {
		errs = append(errs, fmt.Errorf("config: spin_duration must not be negative, got %s", c.Timing.SpinDuration))
	}
	return errors.Join(errs...)
}
