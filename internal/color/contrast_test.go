package color

import "testing"

func TestBestContrastKnownColors(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Contrast
	}{
		{"black", BlackInk, White},
		{"white", WhiteInk, Black},
		{"pure blue", FromRGB255(0, 0, 255), White},
		{"pure yellow", FromRGB255(255, 255, 0), Black},
		{"pure green", FromRGB255(0, 255, 0), Black},
		{"pure red", FromRGB255(255, 0, 0), Black},
		{"dark gray", FromRGB255(40, 40, 40), White},
		{"light gray", FromRGB255(220, 220, 220), Black},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BestContrast(tc.c); got != tc.want {
				t.Errorf("BestContrast(%s) = %s, expected %s (L*=%.2f)", tc.c, got, tc.want, tc.c.Lightness())
			}
		})
	}
}

func TestBestContrastIsPerceptual(t *testing.T) {
	// Both have an RGB channel average of 85, yet green reads far lighter.
	blue := FromRGB255(0, 0, 255)
	green := FromRGB255(0, 255, 0)

	if BestContrast(blue) == BestContrast(green) {
		t.Errorf("blue and green should need different inks, both got %s", BestContrast(blue))
	}
}

func TestBestContrastScoreOrdering(t *testing.T) {
	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 51 {
				c := FromRGB255(uint8(r), uint8(g), uint8(b))
				best := BestContrast(c)
				if best != Black && best != White {
					t.Fatalf("BestContrast(%s) returned %d", c, best)
				}
				if ContrastScore(best.Ink(), c) < ContrastScore(best.Other().Ink(), c) {
					t.Errorf("BestContrast(%s) = %s but %s scores higher", c, best, best.Other())
				}
			}
		}
	}
}

func TestBestContrastOnWedgeVariants(t *testing.T) {
	base, _ := Parse("pink")
	if got := BestContrast(base.WithPerceivedLightness(20)); got != White {
		t.Errorf("dark pink should take white ink, got %s", got)
	}
	if got := BestContrast(base.WithPerceivedLightness(80)); got != Black {
		t.Errorf("light pink should take black ink, got %s", got)
	}
}

func TestTiesFavorBlack(t *testing.T) {
	if got := preferInk(50, 50); got != Black {
		t.Errorf("tie resolved to %s, expected black", got)
	}
	if got := preferInk(50.0001, 50); got != White {
		t.Errorf("higher white score resolved to %s", got)
	}
	if got := preferInk(49.9999, 50); got != Black {
		t.Errorf("higher black score resolved to %s", got)
	}
}

func TestContrastScore(t *testing.T) {
	if s := ContrastScore(BlackInk, WhiteInk); s < 99.9 || s > 100.0 {
		t.Errorf("black/white score = %f, expected 100", s)
	}

	c := FromRGB255(10, 120, 200)
	if ContrastScore(c, WhiteInk) != ContrastScore(WhiteInk, c) {
		t.Error("ContrastScore should be symmetric")
	}
	if ContrastScore(c, c) != 0 {
		t.Error("a color has no contrast with itself")
	}
	if ContrastScore(c, BlackInk) < 0 {
		t.Error("ContrastScore must not be negative")
	}
}

func TestParseContrast(t *testing.T) {
	tests := []struct {
		input   string
		want    Contrast
		wantErr bool
	}{
		{"black", Black, false},
		{"Dark", Black, false},
		{"white", White, false},
		{"light", White, false},
		{"w", White, false},
		{"grey", Black, true},
	}

	for _, tc := range tests {
		got, err := ParseContrast(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseContrast(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseContrast(%q) = %s, expected %s", tc.input, got, tc.want)
		}
	}

	if Black.Other() != White || White.Other() != Black {
		t.Error("Other() should swap inks")
	}
}
