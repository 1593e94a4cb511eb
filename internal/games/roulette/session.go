package roulette

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coloroulette/internal/color"
	"github.com/vovakirdan/coloroulette/internal/core"
)

// Defaults used when Options leave a field zero.
const (
	DefaultChoiceSeconds = 10
	DefaultTickInterval  = time.Second

	lastLevelPoints = 100
)

// Options configures a Session.
type Options struct {
	Levels        []Level       // Level table; empty falls back to a single gray wedge
	RNG           RandomSource  // Wedge picker; nil seeds from Seed
	Seed          int64         // Used when RNG is nil (0 = time based)
	Clock         Clock         // Countdown clock; nil uses RealClock
	TickInterval  time.Duration // Countdown period (default 1s)
	ChoiceSeconds int           // Countdown start value (default 10)

	// StartAtLastLevel boots at level == LevelCount with 100 points.
	StartAtLastLevel bool

	Logger *log.Logger // nil discards
}

// WithRuntime copies the session fields carried by a RuntimeConfig.
func (o Options) WithRuntime(cfg core.RuntimeConfig) Options {
	o.Seed = cfg.Seed
	o.StartAtLastLevel = cfg.StartAtLastLevel
	return o
}

// Session owns one play-through: status counters, the current round, the
// game state and the choice countdown. All intents are serialized by mu.
type Session struct {
	mu sync.Mutex

	gen           *Generator
	clock         Clock
	tickInterval  time.Duration
	choiceSeconds int
	logger        *log.Logger

	state          GameState
	level          int
	points         int
	round          Round
	choiceTimeLeft int

	countdown *countdown
	timerGen  uint64
	seq       uint64 // Applied transitions so far

	subs   map[uint64]chan Snapshot
	nextID uint64
	closed bool
}

// NewSession creates a session in the Initial state with round 1 ready.
func NewSession(opts Options) *Session {
	rng := opts.RNG
	if rng == nil {
		rng = NewRNG(opts.Seed)
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	secs := opts.ChoiceSeconds
	if secs <= 0 {
		secs = DefaultChoiceSeconds
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		gen:            NewGenerator(opts.Levels, rng),
		clock:          clock,
		tickInterval:   tick,
		choiceSeconds:  secs,
		logger:         logger,
		state:          StateInitial,
		level:          1,
		choiceTimeLeft: secs,
		subs:           make(map[uint64]chan Snapshot),
	}
	if opts.StartAtLastLevel {
		s.level = s.gen.LevelCount()
		s.points = lastLevelPoints
	}
	s.round = s.gen.Configure(s.level)
	return s
}

// Apply validates and applies one intent, then publishes the new snapshot
// to subscribers. Intents that are not valid in the current state are
// ignored and reported with Applied == false.
func (s *Session) Apply(in Intent) Diff {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Countdown ticks only come from the session's own timer.
	if _, internal := in.(countdownTick); internal || s.closed {
		snap := s.snapshotLocked()
		return Diff{Intent: in, Before: snap, After: snap}
	}
	return s.applyAndPublishLocked(in)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel that receives a snapshot after every applied
// intent, starting with the current one. When the buffer is full the oldest
// snapshot is dropped so a slow reader never blocks the game. Call the
// returned function to unsubscribe.
func (s *Session) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 16
	}
	ch := make(chan Snapshot, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.snapshotLocked()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close stops the countdown and closes all subscriber channels.
// Later intents are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopCountdownLocked()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// applyAndPublishLocked runs one transition. Caller holds s.mu.
func (s *Session) applyAndPublishLocked(in Intent) Diff {
	before := s.snapshotLocked()
	applied := s.transitionLocked(in)
	if !applied {
		return Diff{Intent: in, Before: before, After: before}
	}

	s.seq++
	after := s.snapshotLocked()
	s.publishLocked(after)
	return Diff{Intent: in, Applied: true, Before: before, After: after}
}

func (s *Session) transitionLocked(in Intent) bool {
	switch in := in.(type) {
	case Spin:
		switch s.state {
		case StateInitial:
			// Round 1 was generated on entering Initial.
		case StateCorrect:
			s.level = core.Clamp(s.level+1, 1, s.gen.LevelCount())
			s.round = s.gen.Configure(s.level)
		default:
			return false
		}
		s.enterLocked(StateSpinning)

	case SpinFinished:
		if s.state != StateSpinning {
			return false
		}
		s.enterLocked(StateChoosing)

	case Choose:
		if s.state != StateChoosing {
			return false
		}
		if color.BestContrast(s.round.SelectedColor) == in.Side {
			s.points += s.choiceTimeLeft
			if s.level >= s.gen.LevelCount() {
				s.enterLocked(StateWon)
			} else {
				s.enterLocked(StateCorrect)
			}
		} else {
			s.points = 0
			s.enterLocked(StateLost)
		}

	case CashOut:
		if s.state != StateCorrect {
			return false
		}
		s.enterLocked(StateWon)

	case StartNewGame:
		if !s.state.IsTerminal() {
			return false
		}
		s.level = 1
		s.points = 0
		s.enterLocked(StateInitial)

	case countdownTick:
		if s.state != StateChoosing || s.countdown == nil || s.countdown.gen != in.gen {
			return false
		}
		if s.choiceTimeLeft > 0 {
			s.choiceTimeLeft--
		}
		if s.choiceTimeLeft == 0 {
			s.points = 0
			s.enterLocked(StateLost)
		}

	default:
		return false
	}
	return true
}

// enterLocked switches state and runs the entry action of the new state.
// Every state other than Choosing cancels the countdown in the same step.
func (s *Session) enterLocked(next GameState) {
	from := s.state
	s.state = next

	switch next {
	case StateChoosing:
		s.choiceTimeLeft = s.choiceSeconds
		s.startCountdownLocked()
	case StateInitial:
		s.stopCountdownLocked()
		s.round = s.gen.Configure(s.level)
	default:
		s.stopCountdownLocked()
	}

	s.logger.Debug("state changed",
		"from", from,
		"to", next,
		"level", s.level,
		"points", s.points,
		"time_left", s.choiceTimeLeft,
	)
}

// publishLocked fans a snapshot out to subscribers without blocking.
func (s *Session) publishLocked(snap Snapshot) {
	for _, ch := range s.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		// Buffer full: drop the oldest and retry once.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
