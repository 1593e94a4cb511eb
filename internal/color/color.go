// Package color implements the perceptual color model behind the wheel.
// Wedge variants are derived in CIE LCh space and ink contrast is judged by
// CIE L* lightness, not by RGB luma, so a saturated blue and a saturated
// yellow with similar luma still rank the way people see them.
package color

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with perceptual helpers.
// Values are comparable with ==.
type Color struct {
	c colorful.Color
}

// Reference inks and the neutral fallback wedge.
var (
	BlackInk = Color{c: colorful.Color{R: 0, G: 0, B: 0}}
	WhiteInk = Color{c: colorful.Color{R: 1, G: 1, B: 1}}
	Gray     = FromRGB255(142, 142, 147)
)

// named holds the base colors a level table may refer to by name.
var named = map[string]Color{
	"blue":   FromRGB255(0, 122, 255),
	"green":  FromRGB255(52, 199, 89),
	"red":    FromRGB255(255, 59, 48),
	"cyan":   FromRGB255(50, 173, 230),
	"pink":   FromRGB255(255, 45, 85),
	"yellow": FromRGB255(255, 204, 0),
	"gray":   Gray,
	"black":  BlackInk,
	"white":  WhiteInk,
}

// FromRGB255 creates a color from 8-bit sRGB channels.
func FromRGB255(r, g, b uint8) Color {
	return Color{c: colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}}
}

// Parse accepts a known color name (case-insensitive) or a #rrggbb hex string.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("color: invalid hex %q: %w", s, err)
		}
		return Color{c: c}, nil
	}
	return Color{}, fmt.Errorf("color: unknown color %q (want #rrggbb or one of %s)", s, strings.Join(Names(), ", "))
}

// Names returns the color names Parse understands.
func Names() []string {
	return []string{"blue", "green", "red", "cyan", "pink", "yellow", "gray", "black", "white"}
}

// Lightness returns the CIE L* lightness in [0, 100].
func (c Color) Lightness() float64 {
	l, _, _ := c.c.Lab()
	return clampPercent(l * 100)
}

// WithPerceivedLightness keeps the hue of c and sets its CIE L* to percent.
// Chroma is reduced as far as needed to stay inside the sRGB gamut.
func (c Color) WithPerceivedLightness(percent float64) Color {
	h, chroma, _ := c.c.Hcl()
	l := clampPercent(percent) / 100

	out := colorful.Hcl(h, chroma, l)
	if !out.IsValid() {
		lo, hi := 0.0, chroma
		for range 24 {
			mid := (lo + hi) / 2
			if colorful.Hcl(h, mid, l).IsValid() {
				lo = mid
			} else {
				hi = mid
			}
		}
		out = colorful.Hcl(h, lo, l)
	}
	return Color{c: out.Clamped()}
}

// Hex returns the #rrggbb form, suitable for lipgloss.Color.
func (c Color) Hex() string {
	return c.c.Clamped().Hex()
}

// RGB255 returns the 8-bit sRGB channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.c.Clamped().RGB255()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
