package engine

import "time"

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns elapsed time from t using the monotonic reading when present
func (p *TimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}
