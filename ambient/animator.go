package ambient

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/daml/herofx/constants"
	"github.com/daml/herofx/engine"
)

// ErrInvalidConfig matches every ConfigError via errors.Is
var ErrInvalidConfig = errors.New("ambient: invalid configuration")

// ConfigError is returned from Mount, no frame is requested
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "ambient: invalid " + e.Field + ": " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Config is the mount-time configuration of an animator
type Config struct {
	Count        int
	Initial      Point
	Easing       float64 // Easing of point 0, in (0,1]
	LeaveOpacity float64 // Layer opacity while the pointer is outside, in [0,1]
}

// NewConfig returns count points resting at the center
func NewConfig(count int) Config {
	return Config{
		Count:        count,
		Initial:      Point{X: constants.DefaultFocus, Y: constants.DefaultFocus},
		Easing:       constants.DefaultEasing,
		LeaveOpacity: 1,
	}
}

// Validate reports the first configuration problem
func (c Config) Validate() error {
	if c.Count < 0 {
		return &ConfigError{Field: "count", Reason: fmt.Sprintf("must not be negative, got %d", c.Count)}
	}
	if c.Easing <= 0 || c.Easing > 1 {
		return &ConfigError{Field: "easing", Reason: fmt.Sprintf("must be in (0,1], got %g", c.Easing)}
	}
	if c.LeaveOpacity < 0 || c.LeaveOpacity > 1 {
		return &ConfigError{Field: "leave_opacity", Reason: fmt.Sprintf("must be in [0,1], got %g", c.LeaveOpacity)}
	}
	return nil
}

// Animator eases focal points toward the pointer once per display frame
type Animator struct {
	frames engine.FrameScheduler

	mu           sync.Mutex
	state        State
	opacity      float64
	leaveOpacity float64
	inside       bool
	gen          uint64
	frame        engine.Frame
	running      bool
	ticks        uint64
}

// Mount validates cfg and starts the redraw loop
func Mount(frames engine.FrameScheduler, cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Animator{
		frames:       frames,
		state:        NewState(cfg.Count, cfg.Initial, cfg.Easing),
		opacity:      1,
		leaveOpacity: cfg.LeaveOpacity,
		running:      true,
	}
	a.mu.Lock()
	a.frame = a.frames.RequestFrame(a.frameFunc(a.gen))
	a.mu.Unlock()
	return a, nil
}

// OnPointerMove records the latest pointer position, applied on the next frame
// Earlier positions not yet consumed by a frame are overwritten
func (a *Animator) OnPointerMove(x, y float64) {
	a.mu.Lock()
	a.state.Target = Point{X: x, Y: y}
	a.opacity = 1
	a.inside = true
	a.mu.Unlock()
}

// OnPointerEnter restores full opacity, motion is unaffected
func (a *Animator) OnPointerEnter() {
	a.mu.Lock()
	a.opacity = 1
	a.inside = true
	a.mu.Unlock()
}

// OnPointerLeave applies the leave opacity, motion is unaffected
func (a *Animator) OnPointerLeave() {
	a.mu.Lock()
	a.opacity = a.leaveOpacity
	a.inside = false
	a.mu.Unlock()
}

// Points returns a copy of the focal points
func (a *Animator) Points() []Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Point, len(a.state.Points))
	copy(out, a.state.Points)
	return out
}

// Target returns the latest pointer position
func (a *Animator) Target() Point {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Target
}

// Opacity returns the layer opacity
func (a *Animator) Opacity() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.opacity
}

// Inside reports whether the pointer was last seen inside the container
func (a *Animator) Inside() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inside
}

// Ticks returns the number of redraw ticks applied
func (a *Animator) Ticks() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// Running reports whether the redraw loop is active
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Teardown cancels the redraw loop, idempotent
func (a *Animator) Teardown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.gen++
	a.running = false
	if a.frame != nil {
		a.frame.Cancel()
		a.frame = nil
	}
}

func (a *Animator) frameFunc(gen uint64) func(time.Time) {
	return func(time.Time) {
		a.mu.Lock()
		defer a.mu.Unlock()

		if gen != a.gen {
			return
		}
		a.state = Step(a.state)
		a.ticks++
		a.frame = a.frames.RequestFrame(a.frameFunc(gen))
	}
}
