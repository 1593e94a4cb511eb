package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/coloroulette/internal/config"
	"github.com/vovakirdan/coloroulette/internal/core"
	"github.com/vovakirdan/coloroulette/internal/games/roulette"
	"github.com/vovakirdan/coloroulette/internal/storage"
)

// GameConfig is everything needed to start a session, shared by local and
// SSH play.
type GameConfig struct {
	Levels        []roulette.Level
	ChoiceSeconds int
	TickInterval  time.Duration
	SpinDuration  time.Duration // Wheel animation before the choice opens
}

// GameConfigFrom converts a loaded config file.
func GameConfigFrom(cfg *config.RouletteConfig) GameConfig {
	return GameConfig{
		Levels:        roulette.LevelsFromConfig(*cfg),
		ChoiceSeconds: cfg.Timing.ChoiceSeconds,
		TickInterval:  cfg.Timing.TickInterval,
		SpinDuration:  cfg.Timing.SpinDuration,
	}
}

// NewSession starts a session with the runtime seed and level override.
func (g GameConfig) NewSession(rt core.RuntimeConfig, logger *log.Logger) *roulette.Session {
	opts := roulette.Options{
		Levels:        g.Levels,
		TickInterval:  g.TickInterval,
		ChoiceSeconds: g.ChoiceSeconds,
		Logger:        logger,
	}
	return roulette.NewSession(opts.WithRuntime(rt))
}

// GameModel is the Bubble Tea model for one ColoRoulette session.
// It only renders snapshots and forwards intents; the session owns the rules.
type GameModel struct {
	session     *roulette.Session
	sub         <-chan roulette.Snapshot
	unsubscribe func()
	snap        roulette.Snapshot

	store  *storage.Store
	logger *log.Logger
	player string
	config core.RuntimeConfig

	gameID       string // Identifies the current play-through in the ledger
	recorded     bool   // Whether the current play-through has been saved
	bestScore    int
	spinDuration time.Duration
	spinSeq      int
	spinStarted  time.Time
	spinT        float64 // Animation progress of the current spin, 0..1

	keyMapper *KeyMapper
	spinner   spinner.Model
	progress  progress.Model
	help      help.Model

	quitting   bool
	backToMenu bool
	showScores bool
}

// NewGameModel creates a model that plays session. A nil store disables the
// results ledger and a nil logger discards.
func NewGameModel(session *roulette.Session, store *storage.Store, cfg core.RuntimeConfig, spinDuration time.Duration, player string, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = "local"
	}

	sub, unsubscribe := session.Subscribe(16)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = pointerStyle

	pb := progress.New(
		progress.WithScaledGradient("#ff5f87", "#5fd787"),
		progress.WithoutPercentage(),
		progress.WithWidth(swatchWidth),
	)

	m := GameModel{
		session:      session,
		sub:          sub,
		unsubscribe:  unsubscribe,
		snap:         session.Snapshot(),
		store:        store,
		logger:       logger,
		player:       player,
		config:       cfg,
		gameID:       uuid.NewString(),
		spinDuration: spinDuration,
		keyMapper:    NewKeyMapper(),
		spinner:      sp,
		progress:     pb,
		help:         help.New(),
	}
	m.bestScore = m.loadBestScore()
	return m
}

// Init starts listening to the session.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.session, m.sub), m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		if msg.Session != m.session {
			return m, nil
		}
		m.observe(msg.Snapshot)
		return m, waitForSnapshot(m.session, m.sub)

	case snapshotsClosedMsg:
		return m, nil

	case SpinDoneMsg:
		if msg.GameID != m.gameID || msg.Seq != m.spinSeq {
			return m, nil
		}
		m.spinT = 1
		m.observe(m.session.Apply(roulette.SpinFinished{}).After)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionScores:
		m.showScores = true
		return m, tea.Quit
	}

	in := IntentFor(action)
	if in == nil {
		return m, nil
	}

	d := m.session.Apply(in)
	if !d.Applied {
		return m, nil
	}
	if d.StateChanged() {
		m.logger.Debug("intent applied",
			"intent", in,
			"from", d.Before.State,
			"to", d.After.State,
			"points_delta", d.PointsDelta(),
		)
	}

	var cmd tea.Cmd
	switch in.(type) {
	case roulette.Spin:
		m.spinSeq++
		m.spinStarted = time.Now()
		m.spinT = 0
		cmd = tea.Batch(spinDoneCmd(m.spinDuration, m.gameID, m.spinSeq), tickCmd(frameRate))
	case roulette.StartNewGame:
		// A timeout may have ended the game before its snapshot got here.
		m.observe(d.Before)
		m.gameID = uuid.NewString()
		m.recorded = false
	}

	m.observe(d.After)
	return m, cmd
}

// handleTick advances the wheel animation.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.spinDuration <= 0 {
		m.spinT = 1
	} else {
		m.spinT = core.ClampF(float64(now.Sub(m.spinStarted))/float64(m.spinDuration), 0, 1)
	}
	if m.spinT >= 1 {
		return m, nil
	}
	return m, tickCmd(frameRate)
}

// observe takes a snapshot and records the result once the game is over.
// Snapshots arrive both from Apply and from the subscription, so anything not
// newer than the one on screen is dropped.
func (m *GameModel) observe(snap roulette.Snapshot) {
	if snap.Seq <= m.snap.Seq {
		return
	}
	m.snap = snap

	if !snap.State.IsTerminal() || m.recorded {
		return
	}
	m.recorded = true

	outcome := storage.OutcomeLost
	if snap.State == roulette.StateWon {
		outcome = storage.OutcomeWon
	}
	m.logger.Info("game over",
		"player", m.player,
		"outcome", outcome,
		"level", snap.Level,
		"points", snap.Points,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.ResultEntry{
		SessionID:  m.gameID,
		Player:     m.player,
		Outcome:    outcome,
		Level:      snap.Level,
		LevelCount: snap.LevelCount,
		Points:     snap.Points,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.bestScore = max(m.bestScore, snap.Points)
}

func (m GameModel) loadBestScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.config.ScreenW, 40)
	snap := m.snap

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C O L O R O U L E T T E"), width))
	b.WriteString("\n")
	b.WriteString(centerText(RenderStatus(snap, m.bestScore), width))
	b.WriteString("\n\n")

	pointer := -1
	switch snap.State {
	case roulette.StateSpinning:
		pointer = pointerAt(snap, m.spinT)
	case roulette.StateInitial:
	default:
		pointer = snap.SelectedIndex
	}
	b.WriteString(centerBlock(RenderWheel(snap.WedgeColors, pointer, width), width))
	b.WriteString("\n\n")

	switch snap.State {
	case roulette.StateSpinning:
		b.WriteString(centerText(m.spinner.View()+" "+RenderOutcome(snap), width))
		b.WriteString("\n")
	case roulette.StateChoosing:
		b.WriteString(centerBlock(RenderSwatch(snap.SelectedColor, false), width))
		b.WriteString("\n")
		b.WriteString(centerText(m.countdownView(), width))
		b.WriteString("\n\n")
		b.WriteString(centerText(RenderOutcome(snap), width))
		b.WriteString("\n")
	case roulette.StateCorrect, roulette.StateWon, roulette.StateLost:
		b.WriteString(centerBlock(RenderSwatch(snap.SelectedColor, true), width))
		b.WriteString("\n\n")
		b.WriteString(centerText(RenderOutcome(snap), width))
		b.WriteString("\n")
	default:
		b.WriteString(centerText(RenderOutcome(snap), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keyMapper.Keys())), width))
	return b.String()
}

// countdownView renders the remaining choice time as a bar.
func (m GameModel) countdownView() string {
	total := max(m.snap.ChoiceSeconds, 1)
	frac := float64(m.snap.ChoiceTimeLeft) / float64(total)
	return m.progress.ViewAs(frac) + " " + statusStyle.Render(formatSeconds(m.snap.ChoiceTimeLeft))
}

func formatSeconds(n int) string {
	return (time.Duration(n) * time.Second).String()
}

// Close stops listening to the session.
func (m GameModel) Close() {
	m.unsubscribe()
}

// Snapshot returns the last snapshot the model has seen.
func (m GameModel) Snapshot() roulette.Snapshot {
	return m.snap
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m GameModel) WantsScoreboard() bool {
	return m.showScores
}

// GameResult holds how the player left the game screen.
type GameResult struct {
	Config          core.RuntimeConfig
	WantsScoreboard bool
	BackToMenu      bool
	Quit            bool
}

// RunGame plays session in its own Bubble Tea program until the player
// leaves the game screen.
func RunGame(session *roulette.Session, store *storage.Store, cfg core.RuntimeConfig, spinDuration time.Duration, logger *log.Logger) (GameResult, error) {
	model := NewGameModel(session, store, cfg, spinDuration, "", logger)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Config: cfg, Quit: true}, nil
	}

	return GameResult{
		Config:          m.config,
		WantsScoreboard: m.WantsScoreboard(),
		BackToMenu:      m.BackToMenu(),
		Quit:            m.IsQuitting(),
	}, nil
}
