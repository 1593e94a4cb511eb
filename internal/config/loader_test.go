package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roulette.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RouletteConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultRouletteConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded YAML and DefaultRouletteConfig differ:\n%+v\n%+v", cfg, want)
	}
	if err := want.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if len(want.Levels) != 18 {
		t.Errorf("expected 18 default levels, got %d", len(want.Levels))
	}
}

func TestLoadRouletteFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRoulette("")
	if err != nil {
		t.Fatalf("LoadRoulette() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRouletteConfig()) {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadRouletteUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".coloroulette", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "levels:\n  - { base: red, lightnesses: [10, 90] }\n"
	if err := os.WriteFile(filepath.Join(dir, "roulette.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRoulette("")
	if err != nil {
		t.Fatalf("LoadRoulette() failed: %v", err)
	}
	if len(cfg.Levels) != 1 || cfg.Levels[0].Base != "red" {
		t.Errorf("user config not picked up: %+v", cfg.Levels)
	}
}

func TestLoadRouletteCustomPath(t *testing.T) {
	path := writeConfig(t, `
levels:
  - base: "#336699"
    lightnesses: [30, 70]
  - base: yellow
    lightnesses: [50]
timing:
  choice_seconds: 5
  tick_interval: 250ms
`)

	cfg, err := LoadRoulette(path)
	if err != nil {
		t.Fatalf("LoadRoulette() failed: %v", err)
	}

	if len(cfg.Levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(cfg.Levels))
	}
	if cfg.Levels[0].Base != "#336699" || !reflect.DeepEqual(cfg.Levels[0].Lightnesses, []float64{30, 70}) {
		t.Errorf("unexpected first level: %+v", cfg.Levels[0])
	}
	if cfg.Timing.ChoiceSeconds != 5 {
		t.Errorf("ChoiceSeconds = %d, expected 5", cfg.Timing.ChoiceSeconds)
	}
	if cfg.Timing.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 250ms", cfg.Timing.TickInterval)
	}
	// Missing fields are filled from defaults.
	if cfg.Timing.SpinDuration != 3*time.Second {
		t.Errorf("SpinDuration = %s, expected default 3s", cfg.Timing.SpinDuration)
	}
}

func TestLoadRouletteKeepsExplicitZeroSpin(t *testing.T) {
	path := writeConfig(t, "levels:\n  - { base: red, lightnesses: [50] }\ntiming:\n  spin_duration: 0s\n")

	cfg, err := LoadRoulette(path)
	if err != nil {
		t.Fatalf("LoadRoulette() failed: %v", err)
	}
	if cfg.Timing.SpinDuration != 0 {
		t.Errorf("SpinDuration = %s, expected the explicit 0", cfg.Timing.SpinDuration)
	}
	def := DefaultRouletteConfig().Timing
	if cfg.Timing.ChoiceSeconds != def.ChoiceSeconds || cfg.Timing.TickInterval != def.TickInterval {
		t.Errorf("unset timings should keep defaults, got %+v", cfg.Timing)
	}
}

func TestLoadRouletteCustomPathErrors(t *testing.T) {
	if _, err := LoadRoulette(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	broken := writeConfig(t, "levels: [oops")
	if _, err := LoadRoulette(broken); err == nil {
		t.Error("expected error for malformed YAML")
	}

	unknown := writeConfig(t, "levels:\n  - { base: mauve, lightnesses: [50] }\n")
	_, err := LoadRoulette(unknown)
	if err == nil {
		t.Fatal("expected error for unknown base color")
	}
	if !strings.Contains(err.Error(), "mauve") {
		t.Errorf("error should name the bad color: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RouletteConfig)
		wantErr bool
	}{
		{"defaults", func(*RouletteConfig) {}, false},
		{"empty level table", func(c *RouletteConfig) { c.Levels = nil }, false},
		{"empty lightness list", func(c *RouletteConfig) { c.Levels[0].Lightnesses = nil }, false},
		{"lightness out of range", func(c *RouletteConfig) { c.Levels[0].Lightnesses = []float64{120} }, true},
		{"zero choice seconds", func(c *RouletteConfig) { c.Timing.ChoiceSeconds = 0 }, true},
		{"zero tick interval", func(c *RouletteConfig) { c.Timing.TickInterval = 0 }, true},
		{"negative spin duration", func(c *RouletteConfig) { c.Timing.SpinDuration = -time.Second }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRouletteConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		input string
		want  DifficultyPreset
		secs  int
	}{
		{"", DifficultyNormal, 10},
		{"normal", DifficultyNormal, 10},
		{"easy", DifficultyEasy, 15},
		{"hard", DifficultyHard, 6},
	}

	for _, tc := range tests {
		preset, err := ParseDifficultyPreset(tc.input)
		if err != nil {
			t.Fatalf("ParseDifficultyPreset(%q) failed: %v", tc.input, err)
		}
		if preset != tc.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tc.input, preset, tc.want)
		}

		cfg := DefaultRouletteConfig()
		ApplyRoulettePreset(&cfg, preset)
		if cfg.Timing.ChoiceSeconds != tc.secs {
			t.Errorf("preset %q: ChoiceSeconds = %d, expected %d", preset, cfg.Timing.ChoiceSeconds, tc.secs)
		}
	}

	if _, err := ParseDifficultyPreset("fixed"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
