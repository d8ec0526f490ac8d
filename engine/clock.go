package engine

import "time"

// Timer is a pending one-shot callback that can be stopped
// Stop reports whether the call prevented the callback from running
type Timer interface {
	Stop() bool
}

// Clock is the timer facility consumed by timed components
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Frame is a pending display refresh callback
type Frame interface {
	Cancel()
}

// FrameScheduler delivers one callback before the next displayed frame
// Callbacks that want to keep animating request another frame from inside the callback
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) Frame
}

// Scheduler is the full set of platform services a host provides
type Scheduler interface {
	Clock
	FrameScheduler
}
