package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoulette loads the ColoRoulette configuration.
// Search order: customPath -> ~/.coloroulette/configs/roulette.yaml -> ./configs/roulette.yaml -> embedded default
func LoadRoulette(customPath string) (RouletteConfig, error) {
	var cfg RouletteConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err = parseRoulette(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("roulette.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "roulette.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	cfg, err := parseRoulette(GetDefaultYAML())
	if err != nil {
		return DefaultRouletteConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped
// so the next location in the search order gets a chance.
func tryLoad(path string) (RouletteConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RouletteConfig{}, false
	}
	cfg, err := parseRoulette(data)
	if err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// parseRoulette decodes YAML over the default timings, so a file may list
// only its levels while a timing it does set, zero included, is kept as written.
func parseRoulette(data []byte) (RouletteConfig, error) {
	cfg := RouletteConfig{Timing: DefaultRouletteConfig().Timing}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RouletteConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".coloroulette", "configs", filename)
}
