package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/coloroulette/internal/config"
	"github.com/vovakirdan/coloroulette/internal/core"
	"github.com/vovakirdan/coloroulette/internal/platform/tui"
)

// setup is what every command builds from the global flags.
type setup struct {
	roulette config.RouletteConfig
	game     tui.GameConfig
	runtime  core.RuntimeConfig
	logger   *log.Logger
	closeLog func()
}

// loadSetup reads the config file, applies the difficulty preset and
// builds the logger. With interactive set, logs only go to --log-file so
// they don't tear through the TUI.
func loadSetup(interactive bool) (*setup, error) {
	logger, closeLog, err := newLogger(interactive)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		closeLog()
		return nil, err
	}

	cfg, err := config.LoadRoulette(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}
	config.ApplyRoulettePreset(&cfg, preset)

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	rt.StartAtLastLevel = flagLastLevel
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Debug("config loaded",
		"levels", len(cfg.Levels),
		"difficulty", preset,
		"choice_seconds", cfg.Timing.ChoiceSeconds,
		"seed", rt.Seed,
	)

	return &setup{
		roulette: cfg,
		game:     tui.GameConfigFrom(&cfg),
		runtime:  rt,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// newLogger builds the charmbracelet logger from --log-level and --log-file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "coloroulette",
	})
	return logger, closeLog, nil
}
