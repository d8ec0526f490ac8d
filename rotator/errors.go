package rotator

import "errors"

// ErrInvalidConfig matches every ConfigError via errors.Is
var ErrInvalidConfig = errors.New("rotator: invalid configuration")

// ConfigError is returned synchronously from Mount and Reconfigure, no timers are started
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "rotator: invalid " + e.Field + ": " + e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
