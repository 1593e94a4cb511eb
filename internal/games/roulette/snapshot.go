package roulette

import "github.com/vovakirdan/coloroulette/internal/color"

// Snapshot is a read-only copy of everything a renderer needs.
// Seq grows by one with every applied intent, so a renderer that sees the
// same state through Apply and through a subscription can drop the older copy.
type Snapshot struct {
	Seq            uint64
	State          GameState
	Level          int
	LevelCount     int
	Points         int
	BaseColor      color.Color
	WedgeColors    []color.Color
	SelectedIndex  int
	SelectedColor  color.Color
	Revolutions    float64
	ChoiceTimeLeft int
	ChoiceSeconds  int // Countdown start value, for progress bars
}

// Diff describes the effect of one Apply call.
type Diff struct {
	Intent  Intent
	Applied bool // False when the intent was ignored in the current state
	Before  Snapshot
	After   Snapshot
}

// StateChanged reports whether the intent moved the state machine.
func (d Diff) StateChanged() bool {
	return d.Before.State != d.After.State
}

// PointsDelta returns the change in points.
func (d Diff) PointsDelta() int {
	return d.After.Points - d.Before.Points
}

// snapshotLocked copies the session state. Caller holds s.mu.
func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Seq:            s.seq,
		State:          s.state,
		Level:          s.level,
		LevelCount:     s.gen.LevelCount(),
		Points:         s.points,
		BaseColor:      s.round.BaseColor,
		WedgeColors:    append([]color.Color(nil), s.round.WedgeColors...),
		SelectedIndex:  s.round.SelectedIndex,
		SelectedColor:  s.round.SelectedColor,
		Revolutions:    s.round.Revolutions,
		ChoiceTimeLeft: s.choiceTimeLeft,
		ChoiceSeconds:  s.choiceSeconds,
	}
}
