// Package tui provides the Bubble Tea front end for ColoRoulette.
// It renders session snapshots, maps keys to intents and drives the wheel animation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coloroulette/internal/games/roulette"
)

// frameRate is the wheel animation rate while spinning.
const frameRate = 30

// TickMsg is sent to advance the wheel animation.
type TickMsg time.Time

// SnapshotMsg carries a session snapshot into the Bubble Tea loop.
type SnapshotMsg struct {
	Session  *roulette.Session
	Snapshot roulette.Snapshot
}

// snapshotsClosedMsg reports that a session's subscription has ended.
type snapshotsClosedMsg struct {
	session *roulette.Session
}

// SpinDoneMsg fires when the wheel animation for one spin is over.
type SpinDoneMsg struct {
	GameID string
	Seq    int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForSnapshot blocks on the subscription until the next snapshot arrives.
func waitForSnapshot(s *roulette.Session, ch <-chan roulette.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return snapshotsClosedMsg{session: s}
		}
		return SnapshotMsg{Session: s, Snapshot: snap}
	}
}

// spinDoneCmd reports the end of the spin animation after d.
func spinDoneCmd(d time.Duration, gameID string, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SpinDoneMsg{GameID: gameID, Seq: seq}
	})
}
