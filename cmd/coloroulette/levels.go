package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/games/roulette"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table",
	Long: `Shows every level of the loaded config: its base color and, for each
wedge, the hex value, the perceived lightness (CIE L*) and the ink that
reads better on it.

Examples:
  coloroulette levels
  coloroulette levels --ink white
  coloroulette levels --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var flagInk string

func init() {
	levelsCmd.Flags().StringVar(&flagInk, "ink", "", "Only list wedges that read better in this ink (black|white)")
}

func runLevels(_ *cobra.Command, _ []string) {
	var only *color.Contrast
	if flagInk != "" {
		ink, err := color.ParseContrast(flagInk)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		only = &ink
	}

	st, err := loadSetup(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer st.closeLog()

	levels := st.game.Levels
	if len(levels) == 0 {
		fmt.Println("No levels configured; every spin shows a single gray wedge.")
		return
	}

	colored := term.IsTerminal(int(os.Stdout.Fd()))

	fmt.Printf("%d levels, %d seconds to choose\n\n", len(levels), st.roulette.Timing.ChoiceSeconds)
	fmt.Printf("  %-5s  %-8s  %s\n", "Level", "Base", "Wedges (hex L* ink)")
	fmt.Printf("  %-5s  %-8s  %s\n", "-----", "----", "-------------------")

	for i, lvl := range levels {
		name := st.roulette.Levels[i].Base
		wedges := levelWedges(lvl)
		if only != nil {
			wedges = keepInk(wedges, *only)
			if len(wedges) == 0 {
				continue
			}
		}
		fmt.Printf("  %-5d  %-8s  %s\n", i+1, name, joinWedges(wedges, colored))
	}
}

// levelWedges returns the wedge colors of a level, or its base color when the
// level has no lightness list.
func levelWedges(lvl roulette.Level) []color.Color {
	if len(lvl.Lightnesses) == 0 {
		return []color.Color{lvl.Base}
	}
	wedges := make([]color.Color, len(lvl.Lightnesses))
	for i, l := range lvl.Lightnesses {
		wedges[i] = lvl.Base.WithPerceivedLightness(l)
	}
	return wedges
}

// keepInk filters wedges down to those whose better ink is ink.
func keepInk(wedges []color.Color, ink color.Contrast) []color.Color {
	var kept []color.Color
	for _, c := range wedges {
		if color.BestContrast(c) == ink {
			kept = append(kept, c)
		}
	}
	return kept
}

// formatWedges lists each wedge of a level. When colored is set the hex value
// is printed on the wedge color in its better ink.
func formatWedges(lvl roulette.Level, colored bool) string {
	return joinWedges(levelWedges(lvl), colored)
}

func joinWedges(wedges []color.Color, colored bool) string {
	parts := make([]string, len(wedges))
	for i, c := range wedges {
		parts[i] = formatWedge(c, colored)
	}
	return strings.Join(parts, "  ")
}

func formatWedge(c color.Color, colored bool) string {
	ink := color.BestContrast(c)
	hex := c.Hex()
	if colored {
		hex = lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(ink.Ink().Hex())).
			Render(hex)
	}
	return fmt.Sprintf("%s %2.0f %s", hex, c.Lightness(), ink)
}
