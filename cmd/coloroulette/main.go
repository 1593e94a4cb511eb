// coloroulette is a terminal color-contrast game: spin the wheel, then pick
// the ink (black or white) that reads better on the color it lands on.
//
// Usage:
//
//	coloroulette             - Start the menu and play (same as "play")
//	coloroulette play        - Start the menu and play
//	coloroulette levels      - Print the level table with each wedge's best ink
//	coloroulette serve       - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible wedge picks
//	--config <path>       - Load the level table and timings from a YAML file
//	--difficulty <preset> - easy, normal or hard (choice time 15/10/6 seconds)
//	--last-level          - Start at the final level with 100 points
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file (play mode logs nowhere otherwise)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLastLevel  bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coloroulette",
	Short: "ColoRoulette - black or white, which ink reads better?",
	Long: `ColoRoulette is a terminal game about perceptual contrast.

Spin the wheel, look at the color it lands on and pick the ink that
reads better on it. Every correct pick banks the seconds left on the
clock. Cash out to keep your points, or keep going to the next level.
A wrong pick or running out of time loses everything.

Available commands:
  play     - Start the menu and play (default)
  levels   - Print the level table
  serve    - Start SSH server for remote play

Examples:
  coloroulette
  coloroulette --difficulty hard
  coloroulette levels
  coloroulette serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom roulette config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagLastLevel, "last-level", false, "Start at the final level with 100 points")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
}
