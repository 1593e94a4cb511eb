package roulette

// GameState represents where the session is in a round.
type GameState string

const (
	StateInitial  GameState = "initial"
	StateSpinning GameState = "spinning"
	StateChoosing GameState = "choosing"
	StateCorrect  GameState = "correct"
	StateWon      GameState = "won"
	StateLost     GameState = "lost"
)

// String implements fmt.Stringer.
func (s GameState) String() string {
	return string(s)
}

// IsTerminal reports whether only StartNewGame can leave this state.
func (s GameState) IsTerminal() bool {
	return s == StateWon || s == StateLost
}
