// Package scheduler alternates the display between the stats readout and the
// starfield screensaver on a fixed period.
package scheduler

import "time"

// Mode is the active presentation.
type Mode int

const (
	Stats Mode = iota
	Screensaver
)

func (m Mode) String() string {
	if m == Screensaver {
		return "screensaver"
	}
	return "stats"
}

// Other returns the mode that follows m.
func (m Mode) Other() Mode {
	if m == Stats {
		return Screensaver
	}
	return Stats
}

// State is the timer state. Deadline is always the time of the last flip
// (or start) plus the period.
type State struct {
	Mode     Mode
	Deadline time.Time
}

// Initial returns the state at start-up: Stats, flipping after one period.
func Initial(now time.Time, period time.Duration) State {
	return State{Mode: Stats, Deadline: now.Add(period)}
}

// Next applies the transition rule. Once now reaches the deadline the mode
// flips and the deadline moves to now + period; otherwise s is unchanged.
func (s State) Next(now time.Time, period time.Duration) (State, bool) {
	if now.Before(s.Deadline) {
		return s, false
	}
	return s.Flip(now, period), true
}

// Flip switches mode unconditionally and restarts the period at now.
func (s State) Flip(now time.Time, period time.Duration) State {
	return State{Mode: s.Mode.Other(), Deadline: now.Add(period)}
}

// Remaining returns the time left before the next flip, never negative.
func (s State) Remaining(now time.Time) time.Duration {
	if d := s.Deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}
