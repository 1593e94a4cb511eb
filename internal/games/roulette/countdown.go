package roulette

import "time"

// Clock creates tickers for the choice countdown.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock is the wall-clock Clock.
type RealClock struct{}

// NewTicker wraps time.NewTicker.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// countdown is the handle of the one live choice timer.
type countdown struct {
	gen  uint64
	stop chan struct{}
}

// startCountdownLocked replaces any live countdown with a new one.
// Caller holds s.mu.
func (s *Session) startCountdownLocked() {
	s.stopCountdownLocked()

	s.timerGen++
	cd := &countdown{gen: s.timerGen, stop: make(chan struct{})}
	s.countdown = cd

	ticker := s.clock.NewTicker(s.tickInterval)
	go s.runCountdown(cd, ticker)
}

// stopCountdownLocked cancels the live countdown, if any. Ticks that are
// already waiting on s.mu carry a stale generation and are dropped.
// Caller holds s.mu.
func (s *Session) stopCountdownLocked() {
	if s.countdown == nil {
		return
	}
	close(s.countdown.stop)
	s.countdown = nil
}

func (s *Session) runCountdown(cd *countdown, t Ticker) {
	defer t.Stop()
	for {
		select {
		case <-cd.stop:
			return
		case <-t.C():
			if !s.onTick(cd.gen) {
				return
			}
		}
	}
}

// onTick applies one countdown tick and reports whether the countdown
// should keep running.
func (s *Session) onTick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.applyAndPublishLocked(countdownTick{gen: gen})
	return s.countdown != nil && s.countdown.gen == gen
}
