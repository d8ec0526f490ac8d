package tween

import (
	"sync"
	"time"

	"github.com/daml/herofx/engine"
)

// Spec describes one tween
type Spec struct {
	From, To float64
	Duration time.Duration
	Easing   Easing // Linear when nil

	OnUpdate func(v float64) // Called every frame with the eased value
	OnDone   func()          // Called once after the final value, not on Cancel
}

// Tween animates a value across frames
type Tween struct {
	frames engine.FrameScheduler
	spec   Spec
	start  time.Time

	mu     sync.Mutex
	value  float64
	done   bool
	frame  engine.Frame
	cancel bool
}

// Start begins a tween measured from clock.Now(), the first value lands on the next frame
func Start(sched engine.Scheduler, spec Spec) *Tween {
	if spec.Easing == nil {
		spec.Easing = Linear
	}
	tw := &Tween{
		frames: sched,
		spec:   spec,
		start:  sched.Now(),
		value:  spec.From,
	}
	tw.mu.Lock()
	tw.frame = sched.RequestFrame(tw.step)
	tw.mu.Unlock()
	return tw
}

// Value returns the latest eased value
func (tw *Tween) Value() float64 {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.value
}

// Done reports whether the tween reached its end value
func (tw *Tween) Done() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.done
}

// Cancel stops the tween at its current value, idempotent
func (tw *Tween) Cancel() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.cancel = true
	if tw.frame != nil {
		tw.frame.Cancel()
		tw.frame = nil
	}
}

func (tw *Tween) step(now time.Time) {
	tw.mu.Lock()
	if tw.cancel || tw.done {
		tw.mu.Unlock()
		return
	}

	progress := 1.0
	if tw.spec.Duration > 0 {
		progress = Clamp01(float64(now.Sub(tw.start)) / float64(tw.spec.Duration))
	}
	tw.value = tw.spec.From + (tw.spec.To-tw.spec.From)*tw.spec.Easing(progress)
	if progress >= 1 {
		tw.value = tw.spec.To
		tw.done = true
		tw.frame = nil
	} else {
		tw.frame = tw.frames.RequestFrame(tw.step)
	}
	value, done := tw.value, tw.done
	tw.mu.Unlock()

	if tw.spec.OnUpdate != nil {
		tw.spec.OnUpdate(value)
	}
	if done && tw.spec.OnDone != nil {
		tw.spec.OnDone()
	}
}
