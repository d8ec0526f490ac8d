package tween

import (
	"sync"
	"time"

	"github.com/daml/herofx/engine"
)

// ScrollTiming configures a delayed scroll with a dim overlay
type ScrollTiming struct {
	Delay    time.Duration // Wait before anything moves
	Duration time.Duration // Scroll length
	Fade     time.Duration // Overlay fade in and out
	Dim      float64       // Overlay level while scrolling
}

// Scroll moves a view offset to a target: wait, fade the overlay in while scrolling, fade it out
type Scroll struct {
	sched  engine.Scheduler
	timing ScrollTiming

	mu      sync.Mutex
	offset  float64
	dim     float64
	active  bool
	gen     uint64
	pending engine.Timer
	tweens  []*Tween
}

// NewScroll creates an idle scroll at offset 0
func NewScroll(sched engine.Scheduler, timing ScrollTiming) *Scroll {
	return &Scroll{sched: sched, timing: timing}
}

// Offset returns the current view offset
func (s *Scroll) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// Dim returns the current overlay level
func (s *Scroll) Dim() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dim
}

// Active reports whether a scroll is waiting or running
func (s *Scroll) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// To starts scrolling to target, ignored while a scroll is active
func (s *Scroll) To(target float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return false
	}
	s.active = true
	gen := s.gen
	s.pending = s.sched.AfterFunc(s.timing.Delay, func() { s.begin(gen, target) })
	return true
}

// Jump sets the offset immediately, cancelling any active scroll
func (s *Scroll) Jump(offset float64) {
	s.Cancel()
	s.mu.Lock()
	s.offset = offset
	s.mu.Unlock()
}

// Cancel stops an active scroll where it is and clears the overlay, idempotent
func (s *Scroll) Cancel() {
	s.mu.Lock()
	s.gen++
	s.active = false
	s.dim = 0
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	tweens := s.tweens
	s.tweens = nil
	s.mu.Unlock()

	for _, tw := range tweens {
		tw.Cancel()
	}
}

func (s *Scroll) begin(gen uint64, target float64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	from := s.offset
	s.mu.Unlock()

	fadeIn := Start(s.sched, Spec{
		From:     0,
		To:       s.timing.Dim,
		Duration: s.timing.Fade,
		OnUpdate: s.setter(gen, func(v float64) { s.dim = v }),
	})
	move := Start(s.sched, Spec{
		From:     from,
		To:       target,
		Duration: s.timing.Duration,
		Easing:   EaseInOutQuad,
		OnUpdate: s.setter(gen, func(v float64) { s.offset = v }),
		OnDone:   func() { s.fadeOut(gen) },
	})

	s.mu.Lock()
	if gen == s.gen {
		s.tweens = append(s.tweens, fadeIn, move)
	}
	s.mu.Unlock()
}

func (s *Scroll) fadeOut(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	from := s.dim
	s.mu.Unlock()

	out := Start(s.sched, Spec{
		From:     from,
		To:       0,
		Duration: s.timing.Fade,
		OnUpdate: s.setter(gen, func(v float64) { s.dim = v }),
		OnDone: func() {
			s.mu.Lock()
			if gen == s.gen {
				s.active = false
				s.tweens = nil
			}
			s.mu.Unlock()
		},
	})

	s.mu.Lock()
	if gen == s.gen {
		s.tweens = append(s.tweens, out)
	}
	s.mu.Unlock()
}

// setter applies fn under the lock while gen is still current
func (s *Scroll) setter(gen uint64, fn func(v float64)) func(float64) {
	return func(v float64) {
		s.mu.Lock()
		if gen == s.gen {
			fn(v)
		}
		s.mu.Unlock()
	}
}
