package core

// Action represents a semantic player action, abstracted from physical key presses.
// The platform maps keys to actions and actions to session intents.
type Action int

const (
	ActionNone     Action = iota
	ActionSpin            // Space, Enter - spin the wheel
	ActionBlack           // B, Left - black ink reads better
	ActionWhite           // W, Right - white ink reads better
	ActionCashOut         // C - bank the points and finish
	ActionNewGame         // N, R - start over after a win or loss
	ActionScores          // Tab - show the results ledger
	ActionBack            // Esc - go back to menu
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSpin:
		return "Spin"
	case ActionBlack:
		return "Black"
	case ActionWhite:
		return "White"
	case ActionCashOut:
		return "CashOut"
	case ActionNewGame:
		return "NewGame"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
