package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/core"
	"github.com/vovakirdan/coloroulette/internal/games/roulette"
)

// Wheel layout constants
const (
	maxWedgeWidth = 10
	minWedgeWidth = 3
	wedgeHeight   = 3
	swatchWidth   = 24
	swatchHeight  = 5
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	goodStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
	badStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))
	pointerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// inkStyle renders text on c in the ink that reads best on it.
func inkStyle(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(color.BestContrast(c).Ink().Hex()))
}

// pointerAt returns the wedge under the pointer after fraction t of a spin.
// At t == 1 it is always the selected wedge.
func pointerAt(snap roulette.Snapshot, t float64) int {
	n := len(snap.WedgeColors)
	if n == 0 {
		return 0
	}
	t = core.ClampF(t, 0, 1)
	eased := 1 - math.Pow(1-t, 3)
	turned := int(math.Floor(eased*snap.Revolutions*float64(n) + 1e-9))
	return (n - turned%n) % n
}

// wedgeWidth fits all wedges into the screen width.
func wedgeWidth(n, screenW int) int {
	if n <= 0 {
		return maxWedgeWidth
	}
	return core.Clamp((screenW-4)/n, minWedgeWidth, maxWedgeWidth)
}

// RenderWheel draws the wedges side by side with a pointer under wedge
// pointer. A negative pointer hides it.
func RenderWheel(wedges []color.Color, pointer, screenW int) string {
	if len(wedges) == 0 {
		return ""
	}
	w := wedgeWidth(len(wedges), screenW)

	blocks := make([]string, len(wedges))
	for i, c := range wedges {
		blocks[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Width(w).
			Height(wedgeHeight).
			Render("")
	}
	wheel := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)

	marker := strings.Repeat(" ", w*len(wedges))
	if pointer >= 0 && pointer < len(wedges) {
		pad := pointer*w + w/2
		marker = strings.Repeat(" ", pad) + pointerStyle.Render("▲")
	}
	return wheel + "\n" + marker
}

// RenderSwatch draws a large block of c. With reveal set it prints a sample
// in the better ink and names it.
func RenderSwatch(c color.Color, reveal bool) string {
	style := inkStyle(c).
		Width(swatchWidth).
		Height(swatchHeight).
		Align(lipgloss.Center, lipgloss.Center)

	label := ""
	if reveal {
		label = fmt.Sprintf("%s ink", color.BestContrast(c))
	}
	return style.Render(label)
}

// RenderStatus draws the level and points line.
func RenderStatus(snap roulette.Snapshot, best int) string {
	status := fmt.Sprintf("Level %d/%d   Points %d", snap.Level, snap.LevelCount, snap.Points)
	if best > 0 {
		status += fmt.Sprintf("   Best %d", best)
	}
	return statusStyle.Render(status)
}

// RenderOutcome describes the current state for the player.
func RenderOutcome(snap roulette.Snapshot) string {
	best := color.BestContrast(snap.SelectedColor)

	switch snap.State {
	case roulette.StateInitial:
		return dimStyle.Render("Press space to spin the wheel.")
	case roulette.StateSpinning:
		return "Spinning..."
	case roulette.StateChoosing:
		return fmt.Sprintf("Which ink reads better on %s? %s black  %s white",
			snap.SelectedColor.Hex(), dimStyle.Render("[b]"), dimStyle.Render("[w]"))
	case roulette.StateCorrect:
		next := core.Clamp(snap.Level+1, 1, snap.LevelCount)
		return goodStyle.Render(fmt.Sprintf("Correct! %s reads better.", best)) +
			dimStyle.Render(fmt.Sprintf("  Spin for level %d or cash out.", next))
	case roulette.StateWon:
		return goodStyle.Render(fmt.Sprintf("You banked %d points!", snap.Points)) +
			dimStyle.Render("  Press n for a new game.")
	case roulette.StateLost:
		reason := fmt.Sprintf("Wrong ink, %s reads better.", best)
		if snap.ChoiceTimeLeft == 0 {
			reason = "Time's up!"
		}
		return badStyle.Render(reason+" Points lost.") +
			dimStyle.Render("  Press n for a new game.")
	}
	return ""
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	textW := lipgloss.Width(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
