package roulette

import (
	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/core"
)

// BaseRevolutions is the number of full wheel turns in every spin.
const BaseRevolutions = 3.0

// Round is the wheel set up for one level.
type Round struct {
	Level         int // Level this round was generated for (after clamping)
	BaseColor     color.Color
	Lightnesses   []float64
	WedgeColors   []color.Color // Parallel to Lightnesses
	SelectedIndex int
	SelectedColor color.Color
	Revolutions   float64 // Turns the renderer spins so the wheel stops on SelectedIndex
}

// WedgeCount returns the number of wedges on the wheel.
func (r Round) WedgeCount() int {
	return len(r.WedgeColors)
}

// Generator derives rounds from the level table.
// It is not safe for concurrent use; the session serializes calls.
type Generator struct {
	levels []Level
	rng    RandomSource
}

// NewGenerator creates a generator over levels. A nil rng uses a time-seeded source.
func NewGenerator(levels []Level, rng RandomSource) *Generator {
	if rng == nil {
		rng = NewRNG(0)
	}
	return &Generator{levels: levels, rng: rng}
}

// LevelCount returns the number of playable levels (at least 1).
func (g *Generator) LevelCount() int {
	return max(1, len(g.levels))
}

// Configure builds the round for level. Out-of-range levels are clamped.
func (g *Generator) Configure(level int) Round {
	level = core.Clamp(level, 1, g.LevelCount())

	if len(g.levels) == 0 {
		return singleWedge(level, color.Gray)
	}

	entry := g.levels[level-1]
	if len(entry.Lightnesses) == 0 {
		return singleWedge(level, entry.Base)
	}

	wedges := make([]color.Color, len(entry.Lightnesses))
	for i, l := range entry.Lightnesses {
		wedges[i] = entry.Base.WithPerceivedLightness(l)
	}

	r := Round{
		Level:       level,
		BaseColor:   entry.Base,
		Lightnesses: append([]float64(nil), entry.Lightnesses...),
		WedgeColors: wedges,
	}
	r.SelectedIndex = g.rng.IntN(r.WedgeCount())
	r.SelectedColor = wedges[r.SelectedIndex]
	r.Revolutions = Revolutions(r.SelectedIndex, r.WedgeCount())
	return r
}

// Revolutions returns how far the wheel turns to land on selectedIndex.
func Revolutions(selectedIndex, wedgeCount int) float64 {
	if wedgeCount <= 0 {
		return BaseRevolutions
	}
	n := float64(wedgeCount)
	return BaseRevolutions + (n-float64(selectedIndex))/n
}

// singleWedge is the fallback wheel for missing level data.
func singleWedge(level int, c color.Color) Round {
	return Round{
		Level:         level,
		BaseColor:     c,
		Lightnesses:   []float64{c.Lightness()},
		WedgeColors:   []color.Color{c},
		SelectedIndex: 0,
		SelectedColor: c,
		Revolutions:   BaseRevolutions,
	}
}
