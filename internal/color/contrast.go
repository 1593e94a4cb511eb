package color

import (
	"fmt"
	"math"
	"strings"
)

// Contrast names the ink a player can pick for a wedge.
type Contrast int

const (
	Black Contrast = iota
	White
)

// String returns a human-readable name for the ink.
func (k Contrast) String() string {
	switch k {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Ink returns the reference color of the ink.
func (k Contrast) Ink() Color {
	if k == White {
		return WhiteInk
	}
	return BlackInk
}

// Other returns the opposite ink.
func (k Contrast) Other() Contrast {
	if k == White {
		return Black
	}
	return White
}

// ParseContrast converts "black"/"dark" or "white"/"light" to a Contrast.
func ParseContrast(s string) (Contrast, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "dark", "b":
		return Black, nil
	case "white", "light", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("color: unknown contrast %q", s)
	}
}

// ContrastScore is the perceptual distance between a and b: the absolute
// difference of their CIE L* values. It is symmetric and never negative.
func ContrastScore(a, b Color) float64 {
	return math.Abs(a.Lightness() - b.Lightness())
}

// BestContrast returns the ink that reads better on c.
// Equal scores resolve to Black.
func BestContrast(c Color) Contrast {
	return preferInk(ContrastScore(WhiteInk, c), ContrastScore(BlackInk, c))
}

func preferInk(whiteScore, blackScore float64) Contrast {
	if whiteScore > blackScore {
		return White
	}
	return Black
}
