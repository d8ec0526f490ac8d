package rotator

import (
	"time"

	"github.com/daml/herofx/constants"
)

// Timing holds the dwell and transition durations of a rotation
type Timing struct {
	Delay      time.Duration // Dwell between transitions
	Transition time.Duration // Slide/fade duration, previous item is cleared after it
}

// WrapPause is the dwell applied after a transition lands on index 0
func (t Timing) WrapPause() time.Duration {
	return t.Delay * constants.WrapPauseFactor
}

// DelayAfter returns the dwell following a transition that landed on next
func (t Timing) DelayAfter(next int) time.Duration {
	if next == 0 {
		return t.WrapPause()
	}
	return t.Delay
}

// Config is the mount-time configuration of a rotator
type Config struct {
	Items []string
	Timing
}

// NewConfig returns a config with default timing
func NewConfig(items []string) Config {
	return Config{
		Items: items,
		Timing: Timing{
			Delay:      constants.DefaultRotationDelay,
			Transition: constants.DefaultTransitionDuration,
		},
	}
}

// Validate reports the first configuration problem
// A nil item list is an error, an empty or single-item list is a valid idle rotator
func (c Config) Validate() error {
	if c.Items == nil {
		return &ConfigError{Field: "items", Reason: "item list is missing"}
	}
	if c.Delay <= 0 {
		return &ConfigError{Field: "delay", Reason: "must be positive, got " + c.Delay.String()}
	}
	if c.Delay > constants.MaxRotationDuration {
		return &ConfigError{Field: "delay", Reason: "must not exceed " + constants.MaxRotationDuration.String() + ", got " + c.Delay.String()}
	}
	if c.Transition < 0 {
		return &ConfigError{Field: "transition", Reason: "must not be negative, got " + c.Transition.String()}
	}
	if c.Transition > constants.MaxRotationDuration {
		return &ConfigError{Field: "transition", Reason: "must not exceed " + constants.MaxRotationDuration.String() + ", got " + c.Transition.String()}
	}
	return nil
}

// Rotates reports whether the config produces any transitions
func (c Config) Rotates() bool {
	return len(c.Items) > 1
}
