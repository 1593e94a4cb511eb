package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/core"
	"github.com/vovakirdan/coloroulette/internal/games/roulette"
)

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Spin    key.Binding
	Black   key.Binding
	White   key.Binding
	CashOut key.Binding
	NewGame key.Binding
	Scores  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Spin, k.Black, k.White, k.CashOut, k.NewGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Spin, k.Black, k.White},
		{k.CashOut, k.NewGame},
		{k.Scores, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Spin: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "spin"),
		),
		Black: key.NewBinding(
			key.WithKeys("b", "left"),
			key.WithHelp("b/←", "black"),
		),
		White: key.NewBinding(
			key.WithKeys("w", "right"),
			key.WithHelp("w/→", "white"),
		),
		CashOut: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cash out"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n", "r"),
			key.WithHelp("n", "new game"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Spin):
		return core.ActionSpin, false
	case key.Matches(msg, km.keys.Black):
		return core.ActionBlack, false
	case key.Matches(msg, km.keys.White):
		return core.ActionWhite, false
	case key.Matches(msg, km.keys.CashOut):
		return core.ActionCashOut, false
	case key.Matches(msg, km.keys.NewGame):
		return core.ActionNewGame, false
	case key.Matches(msg, km.keys.Scores):
		return core.ActionScores, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// IntentFor converts a game action to the session intent it requests.
// Actions that only affect the front end return nil.
func IntentFor(a core.Action) roulette.Intent {
	switch a {
	case core.ActionSpin:
		return roulette.Spin{}
	case core.ActionBlack:
		return roulette.Choose{Side: color.Black}
	case core.ActionWhite:
		return roulette.Choose{Side: color.White}
	case core.ActionCashOut:
		return roulette.CashOut{}
	case core.ActionNewGame:
		return roulette.StartNewGame{}
	}
	return nil
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
