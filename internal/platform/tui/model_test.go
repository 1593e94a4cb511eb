package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/core"
	"github.com/vovakirdan/coloroulette/internal/games/roulette"
	"github.com/vovakirdan/coloroulette/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSpin, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSpin, false},
		{"b", runeKey('b'), core.ActionBlack, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionBlack, false},
		{"w", runeKey('w'), core.ActionWhite, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionWhite, false},
		{"c", runeKey('c'), core.ActionCashOut, false},
		{"n", runeKey('n'), core.ActionNewGame, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScores, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			if got != tc.want || quit != tc.wantQuit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tc.msg.String(), got, quit, tc.want, tc.wantQuit)
			}
		})
	}
}

func TestIntentFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   roulette.Intent
	}{
		{core.ActionSpin, roulette.Spin{}},
		{core.ActionBlack, roulette.Choose{Side: color.Black}},
		{core.ActionWhite, roulette.Choose{Side: color.White}},
		{core.ActionCashOut, roulette.CashOut{}},
		{core.ActionNewGame, roulette.StartNewGame{}},
		{core.ActionScores, nil},
		{core.ActionQuit, nil},
	}

	for _, tc := range tests {
		if got := IntentFor(tc.action); got != tc.want {
			t.Errorf("IntentFor(%s) = %v, expected %v", tc.action, got, tc.want)
		}
	}
}

func TestPointerLandsOnSelectedWedge(t *testing.T) {
	levels := roulette.DefaultLevels()
	g := roulette.NewGenerator(levels, roulette.NewRNG(5))

	for level := 1; level <= g.LevelCount(); level++ {
		for range 10 {
			r := g.Configure(level)
			snap := roulette.Snapshot{
				WedgeColors:   r.WedgeColors,
				SelectedIndex: r.SelectedIndex,
				Revolutions:   r.Revolutions,
			}
			if got := pointerAt(snap, 1); got != r.SelectedIndex {
				t.Fatalf("level %d: pointer stopped on %d, expected %d", level, got, r.SelectedIndex)
			}
			if got := pointerAt(snap, 0); got != 0 {
				t.Fatalf("level %d: pointer starts on %d", level, got)
			}
		}
	}
}

// newModelSession builds a session whose countdown never fires during a test.
func newModelSession(t *testing.T, lastLevel bool) *roulette.Session {
	t.Helper()
	s := roulette.NewSession(roulette.Options{
		Levels:           roulette.DefaultLevels(),
		Seed:             11,
		TickInterval:     time.Hour,
		StartAtLastLevel: lastLevel,
	})
	t.Cleanup(s.Close)
	return s
}

func keyFor(side color.Contrast) tea.KeyMsg {
	if side == color.White {
		return runeKey('w')
	}
	return runeKey('b')
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelRecordsResultOnce(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	session := newModelSession(t, true)
	m := NewGameModel(session, store, core.DefaultConfig(), 0, "alice", nil)
	defer m.Close()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Snapshot().State != roulette.StateSpinning {
		t.Fatalf("space led to %s", m.Snapshot().State)
	}

	// A spin-done message from another game is ignored.
	m = update(t, m, SpinDoneMsg{GameID: "other", Seq: m.spinSeq})
	if m.Snapshot().State != roulette.StateSpinning {
		t.Fatalf("stale spin-done moved the game to %s", m.Snapshot().State)
	}

	m = update(t, m, SpinDoneMsg{GameID: m.gameID, Seq: m.spinSeq})
	if m.Snapshot().State != roulette.StateChoosing {
		t.Fatalf("spin-done led to %s", m.Snapshot().State)
	}
	if !strings.Contains(m.View(), "Level 18/18") {
		t.Error("view should show the level status")
	}

	side := color.BestContrast(m.Snapshot().SelectedColor)
	m = update(t, m, keyFor(side))
	won := m.Snapshot()
	if won.State != roulette.StateWon {
		t.Fatalf("correct choice at the last level led to %s", won.State)
	}

	// The same terminal snapshot arriving through the subscription is not saved twice.
	m = update(t, m, SnapshotMsg{Session: session, Snapshot: won})

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 recorded result, got %d", len(results))
	}
	r := results[0]
	if r.Player != "alice" || r.Outcome != storage.OutcomeWon || r.Points != won.Points || r.Level != 18 {
		t.Errorf("recorded %+v", r)
	}
	if m.bestScore != won.Points {
		t.Errorf("best score = %d, expected %d", m.bestScore, won.Points)
	}

	firstID := m.gameID
	m = update(t, m, runeKey('n'))
	if m.Snapshot().State != roulette.StateInitial || m.gameID == firstID || m.recorded {
		t.Errorf("new game: state %s, same id %v, recorded %v", m.Snapshot().State, m.gameID == firstID, m.recorded)
	}
}

func TestGameModelWrongChoiceRecordsLoss(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	session := newModelSession(t, false)
	m := NewGameModel(session, store, core.DefaultConfig(), 0, "", nil)
	defer m.Close()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, SpinDoneMsg{GameID: m.gameID, Seq: m.spinSeq})

	side := color.BestContrast(m.Snapshot().SelectedColor)
	m = update(t, m, keyFor(side.Other()))
	if m.Snapshot().State != roulette.StateLost {
		t.Fatalf("wrong choice led to %s", m.Snapshot().State)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 1 || stats.Losses != 1 {
		t.Errorf("stats = %+v", stats)
	}
	results, _ := store.TopResults(1)
	if len(results) != 1 || results[0].Player != "local" {
		t.Errorf("expected one result for the local player, got %+v", results)
	}
}

func TestGameModelScreenExits(t *testing.T) {
	session := newModelSession(t, false)

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		check func(GameModel) bool
	}{
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, GameModel.BackToMenu},
		{"scores", tea.KeyMsg{Type: tea.KeyTab}, GameModel.WantsScoreboard},
		{"quit", runeKey('q'), GameModel.IsQuitting},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewGameModel(session, nil, core.DefaultConfig(), time.Second, "", nil)
			defer m.Close()

			next, cmd := m.Update(tc.msg)
			if !tc.check(next.(GameModel)) {
				t.Errorf("%s did not set its exit flag", tc.name)
			}
			if cmd == nil {
				t.Errorf("%s should end the program", tc.name)
			}
		})
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().Choice != MenuChoiceScores {
		t.Errorf("expected the scores entry, got %+v", m.Selected())
	}

	m = NewMenuModel(nil, core.DefaultConfig())
	for range 5 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if !m.IsQuitting() {
		t.Error("selecting the last entry should quit")
	}
}

// drain feeds every queued subscription snapshot to the model in order.
func drain(t *testing.T, m GameModel, session *roulette.Session) GameModel {
	t.Helper()
	for len(m.sub) > 0 {
		m = update(t, m, SnapshotMsg{Session: session, Snapshot: <-m.sub})
	}
	return m
}

func TestGameModelIgnoresQueuedSnapshotsAfterNewGame(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	session := newModelSession(t, false)
	m := NewGameModel(session, store, core.DefaultConfig(), 0, "", nil)
	defer m.Close()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, SpinDoneMsg{GameID: m.gameID, Seq: m.spinSeq})

	// A wrong choice and a new game arrive before any queued snapshot.
	side := color.BestContrast(m.Snapshot().SelectedColor)
	m = update(t, m, keyFor(side.Other()))
	m = update(t, m, runeKey('n'))
	if m.Snapshot().State != roulette.StateInitial {
		t.Fatalf("new game led to %s", m.Snapshot().State)
	}

	m = drain(t, m, session)
	if m.Snapshot().State != roulette.StateInitial {
		t.Errorf("queued snapshots moved the view back to %s", m.Snapshot().State)
	}
	if m.recorded {
		t.Error("the new game should not be marked as recorded")
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 1 || stats.Losses != 1 {
		t.Errorf("expected one lost game, got %+v", stats)
	}
}

func TestGameModelRecordsTimeoutBeforeNewGame(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	session := roulette.NewSession(roulette.Options{
		Levels:        roulette.DefaultLevels(),
		Seed:          3,
		TickInterval:  5 * time.Millisecond,
		ChoiceSeconds: 1,
	})
	defer session.Close()

	m := NewGameModel(session, store, core.DefaultConfig(), 0, "", nil)
	defer m.Close()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, SpinDoneMsg{GameID: m.gameID, Seq: m.spinSeq})
	firstID := m.gameID

	deadline := time.Now().Add(2 * time.Second)
	for session.Snapshot().State != roulette.StateLost {
		if time.Now().After(deadline) {
			t.Fatalf("countdown never ran out, state %s", session.Snapshot().State)
		}
		time.Sleep(time.Millisecond)
	}

	// The timeout snapshot is still queued when the player starts over.
	m = update(t, m, runeKey('n'))
	m = drain(t, m, session)

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 recorded result, got %d", len(results))
	}
	if results[0].SessionID != firstID || results[0].Outcome != storage.OutcomeLost {
		t.Errorf("recorded %+v, expected a loss for %s", results[0], firstID)
	}
}

func TestScoreboardClear(t *testing.T) {
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveResult(storage.ResultEntry{
		SessionID: "g1", Player: "alice", Outcome: storage.OutcomeWon, Level: 3, LevelCount: 18, Points: 20,
	}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// The shared ledger ignores the clear key.
	m := NewScoreboardModel(store, 80, 24)
	next, _ := m.Update(runeKey('x'))
	if n := len(next.(ScoreboardModel).results); n != 1 {
		t.Fatalf("clear without WithClear left %d results, expected 1", n)
	}

	next, _ = NewScoreboardModel(store, 80, 24).WithClear().Update(runeKey('x'))
	if n := len(next.(ScoreboardModel).results); n != 0 {
		t.Errorf("clear left %d results", n)
	}
	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("high score after clear = %d", high)
	}
}
