package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coloroulette/internal/platform/tui"
	"github.com/vovakirdan/coloroulette/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the menu and play",
	Long: `Start ColoRoulette with the start menu.

Results of finished games are kept in memory for the scoreboard and
are gone when the program exits.

Controls:
  Space/Enter  - Spin the wheel
  B/Left       - Black ink reads better
  W/Right      - White ink reads better
  C            - Cash out
  N            - New game (after a win or loss)
  Tab          - Scoreboard
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 15 seconds to choose
  normal - 10 seconds to choose (or whatever the config file says)
  hard   - 6 seconds to choose

Examples:
  coloroulette play
  coloroulette play --difficulty easy
  coloroulette play --seed 42
  coloroulette play --config ./my-levels.yaml
  coloroulette play --last-level --log-file debug.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	st, err := loadSetup(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results ledger: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := playLoop(st, store)

	// Close store and log before potential exit
	if store != nil {
		store.Close()
	}
	st.closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLoop runs menu -> game/scoreboard -> menu until the player quits.
func playLoop(st *setup, store *storage.Store) error {
	cfg := st.runtime

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			session := st.game.NewSession(cfg, st.logger)
			result, err := tui.RunGame(session, store, cfg, st.game.SpinDuration, st.logger)
			session.Close()
			if err != nil {
				return err
			}
			cfg = result.Config

			if result.Quit {
				return nil
			}
			if result.WantsScoreboard {
				goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
			}

		default:
			return nil
		}
	}
}
