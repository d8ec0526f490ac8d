package rotator

import (
	"slices"
	"time"
)

// NoPrevious marks the absence of an exiting item
const NoPrevious = -1

// State is the complete rotation state of one rotator instance
type State struct {
	Items    []string
	Current  int // Fully visible (entering) item
	Previous int // Exiting item or NoPrevious
	Timing

	// Transitions counts applied ticks, a clear-exit carries the count of the tick that scheduled it
	Transitions uint64
}

// Effects are the timers a tick asks its driver to schedule
type Effects struct {
	ClearExitAfter time.Duration // One-shot clear of Previous, replaces any pending clear
	NextTickAfter  time.Duration // Successor tick
	Transition     uint64        // Transition the clear belongs to
}

// NewState returns the initial state for cfg, the items are copied
func NewState(cfg Config) State {
	return State{
		Items:    slices.Clone(cfg.Items),
		Current:  0,
		Previous: NoPrevious,
		Timing:   cfg.Timing,
	}
}

// Idle reports whether the state never rotates
func (s State) Idle() bool {
	return len(s.Items) <= 1
}

// OnTick advances the rotation by one item
// The dwell after the new item is doubled when the tick lands on index 0
func OnTick(s State) (State, Effects) {
	if s.Idle() {
		return s, Effects{}
	}

	next := (s.Current + 1) % len(s.Items)
	s.Previous = s.Current
	s.Current = next
	s.Transitions++

	return s, Effects{
		ClearExitAfter: s.Transition,
		NextTickAfter:  s.DelayAfter(next),
		Transition:     s.Transitions,
	}
}

// OnClearExit ends the exit animation scheduled by the given transition
// A clear from a superseded transition leaves the newer Previous intact
func OnClearExit(s State, transition uint64) State {
	if transition != s.Transitions {
		return s
	}
	s.Previous = NoPrevious
	return s
}
