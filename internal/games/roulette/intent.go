package roulette

import "github.com/vovakirdan/coloroulette/internal/color"

// Intent is a request sent to a Session.
// Intents that do not apply to the current state are ignored.
type Intent interface {
	intent()
	String() string
}

// Spin starts the wheel. It is accepted only in Initial (same round) and
// Correct (next level); Won and Lost need StartNewGame first.
type Spin struct{}

// SpinFinished is sent by the renderer once the spin animation has ended.
type SpinFinished struct{}

// Choose submits the player's ink for the selected wedge.
type Choose struct {
	Side color.Contrast
}

// CashOut banks the points after a correct answer and ends the game as won.
type CashOut struct{}

// StartNewGame resets a won or lost game back to level 1.
type StartNewGame struct{}

// countdownTick is raised by the session's own countdown.
type countdownTick struct {
	gen uint64
}

func (Spin) intent()          {}
func (SpinFinished) intent()  {}
func (Choose) intent()        {}
func (CashOut) intent()       {}
func (StartNewGame) intent()  {}
func (countdownTick) intent() {}

func (Spin) String() string          { return "spin" }
func (SpinFinished) String() string  { return "spin_finished" }
func (c Choose) String() string      { return "choose(" + c.Side.String() + ")" }
func (CashOut) String() string       { return "cash_out" }
func (StartNewGame) String() string  { return "start_new_game" }
func (countdownTick) String() string { return "countdown_tick" }
