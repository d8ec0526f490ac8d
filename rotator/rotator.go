package rotator

import (
	"slices"
	"sync"
	"time"

	"github.com/daml/herofx/engine"
)

// Phase is the scheduling state of a rotator
type Phase int

const (
	PhaseIdle    Phase = iota // No timers, terminal until reconfigured
	PhaseCycling              // Tick timer active
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCycling:
		return "cycling"
	default:
		return "unknown"
	}
}

// Snapshot is the render signal of a rotator at one instant
// Items is a copy, writes to it never reach the rotator
type Snapshot struct {
	Items           []string
	Current         int
	Previous        int
	Phase           Phase
	Transitions     uint64
	TransitionStart time.Time
	Transition      time.Duration
}

// Text returns the current item, empty when there are no items
func (s Snapshot) Text() string {
	if s.Current < 0 || s.Current >= len(s.Items) {
		return ""
	}
	return s.Items[s.Current]
}

// Exiting returns the item animating out, if any
func (s Snapshot) Exiting() (string, bool) {
	if s.Previous == NoPrevious || s.Previous >= len(s.Items) {
		return "", false
	}
	return s.Items[s.Previous], true
}

// Progress returns the elapsed fraction [0,1] of the active transition, 1 when none is active
func (s Snapshot) Progress(now time.Time) float64 {
	if s.Previous == NoPrevious || s.Transition <= 0 {
		return 1
	}
	p := float64(now.Sub(s.TransitionStart)) / float64(s.Transition)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Rotator cycles through items on a Clock
// Each instance owns its tick and clear-exit timers, a generation token
// checked at callback entry makes callbacks of a torn down mount inert
type Rotator struct {
	clock engine.Clock

	mu              sync.Mutex
	state           State
	phase           Phase
	gen             uint64
	tickTimer       engine.Timer
	clearTimer      engine.Timer
	transitionStart time.Time

	listeners []func(Snapshot)
}

// Mount validates cfg and starts cycling when there are at least two items
func Mount(clock engine.Clock, cfg Config) (*Rotator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Rotator{clock: clock}
	r.mu.Lock()
	r.startLocked(cfg)
	r.mu.Unlock()
	return r, nil
}

// OnChange registers fn to receive a snapshot after every tick and clear-exit
// fn runs on the clock's callback goroutine without the rotator lock held
func (r *Rotator) OnChange(fn func(Snapshot)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Snapshot returns the current render signal
func (r *Rotator) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Phase returns the scheduling state
func (r *Rotator) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Teardown cancels all pending timers, idempotent
// The displayed state freezes at its last value
func (r *Rotator) Teardown() {
	r.mu.Lock()
	r.teardownLocked()
	r.mu.Unlock()
}

// Reconfigure tears the rotation down and mounts cfg fresh at index 0
// On a configuration error the rotator stays torn down and the error is returned
func (r *Rotator) Reconfigure(cfg Config) error {
	r.mu.Lock()
	r.teardownLocked()
	if err := cfg.Validate(); err != nil {
		r.mu.Unlock()
		return err
	}
	r.startLocked(cfg)
	snap := r.snapshotLocked()
	listeners := r.listeners
	r.mu.Unlock()

	notify(listeners, snap)
	return nil
}

func (r *Rotator) startLocked(cfg Config) {
	r.state = NewState(cfg)
	r.transitionStart = time.Time{}
	if !cfg.Rotates() {
		r.phase = PhaseIdle
		return
	}
	r.phase = PhaseCycling
	r.tickTimer = r.clock.AfterFunc(cfg.Delay, r.tickFunc(r.gen))
}

func (r *Rotator) teardownLocked() {
	r.gen++
	if r.tickTimer != nil {
		r.tickTimer.Stop()
		r.tickTimer = nil
	}
	if r.clearTimer != nil {
		r.clearTimer.Stop()
		r.clearTimer = nil
	}
	r.phase = PhaseIdle
}

func (r *Rotator) tickFunc(gen uint64) func() {
	return func() {
		r.mu.Lock()
		if gen != r.gen || r.phase != PhaseCycling {
			r.mu.Unlock()
			return
		}

		var fx Effects
		r.state, fx = OnTick(r.state)
		r.transitionStart = r.clock.Now()

		// Only the latest transition may clear Previous
		if r.clearTimer != nil {
			r.clearTimer.Stop()
		}
		r.clearTimer = r.clock.AfterFunc(fx.ClearExitAfter, r.clearFunc(gen, fx.Transition))
		r.tickTimer = r.clock.AfterFunc(fx.NextTickAfter, r.tickFunc(gen))

		snap := r.snapshotLocked()
		listeners := r.listeners
		r.mu.Unlock()

		notify(listeners, snap)
	}
}

func (r *Rotator) clearFunc(gen, transition uint64) func() {
	return func() {
		r.mu.Lock()
		if gen != r.gen || transition != r.state.Transitions {
			r.mu.Unlock()
			return
		}
		r.state = OnClearExit(r.state, transition)
		r.clearTimer = nil

		snap := r.snapshotLocked()
		listeners := r.listeners
		r.mu.Unlock()

		notify(listeners, snap)
	}
}

func (r *Rotator) snapshotLocked() Snapshot {
	return Snapshot{
		Items:           slices.Clone(r.state.Items),
		Current:         r.state.Current,
		Previous:        r.state.Previous,
		Phase:           r.phase,
		Transitions:     r.state.Transitions,
		TransitionStart: r.transitionStart,
		Transition:      r.state.Transition,
	}
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
