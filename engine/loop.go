package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daml/herofx/constants"
)

// Callback states shared by timers and frames
const (
	callbackPending int32 = iota
	callbackFired
	callbackCancelled
)

// Loop is a single-threaded event loop providing Clock and FrameScheduler
// Every timer, frame and posted callback runs serially on the goroutine executing Run,
// so components driven by a Loop never observe concurrent callbacks
type Loop struct {
	time          *TimeProvider
	frameInterval time.Duration

	mu      sync.Mutex
	pending []func()
	frames  []*loopFrame
	wake    chan struct{}

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
	stopped  atomic.Bool

	// Frame counter for debugging and metrics
	frameCount atomic.Uint64
}

// NewLoop creates a loop that fires frame callbacks every frameInterval
func NewLoop(frameInterval time.Duration) *Loop {
	if frameInterval <= 0 {
		frameInterval = constants.FrameUpdateInterval
	}
	return &Loop{
		time:          NewTimeProvider(),
		frameInterval: frameInterval,
		wake:          make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
	}
}

// Now returns the current wall clock time
func (l *Loop) Now() time.Time {
	return l.time.Now()
}

// FrameInterval returns the configured refresh period
func (l *Loop) FrameInterval() time.Duration {
	return l.frameInterval
}

// Frames returns the number of frame batches executed
func (l *Loop) Frames() uint64 {
	return l.frameCount.Load()
}

// Post queues fn to run on the loop goroutine, safe from any goroutine
// Callbacks posted after Stop are discarded
func (l *Loop) Post(fn func()) {
	if l.stopped.Load() {
		return
	}
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// AfterFunc schedules fn on the loop after d
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.Post(func() {
			// Cancellation is re-checked on the loop side, a Stop racing with the post still wins
			if lt.state.CompareAndSwap(callbackPending, callbackFired) {
				fn()
			}
		})
	})
	return lt
}

// RequestFrame schedules fn for the next frame batch
func (l *Loop) RequestFrame(fn func(now time.Time)) Frame {
	f := &loopFrame{fn: fn}
	l.mu.Lock()
	l.frames = append(l.frames, f)
	l.mu.Unlock()
	return f
}

// Run executes callbacks until ctx is done or Stop is called
// Returns nil after Stop and ctx.Err() on context cancellation
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(l.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.stopChan:
			return nil

		case <-l.wake:
			l.drain()

		case now := <-ticker.C:
			// Posted work first so input observed before the frame is reflected in it
			l.drain()
			l.fireFrames(now)
		}
	}
}

// Stop halts Run, idempotent
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.stopChan)
	})
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		batch := l.pending
		l.pending = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			if l.stopped.Load() {
				return
			}
			fn()
		}
	}
}

func (l *Loop) fireFrames(now time.Time) {
	l.mu.Lock()
	batch := l.frames
	l.frames = nil
	l.mu.Unlock()

	l.frameCount.Add(1)
	for _, f := range batch {
		if l.stopped.Load() {
			return
		}
		// Frames requested inside a callback land in the next batch
		if f.state.CompareAndSwap(callbackPending, callbackFired) {
			f.fn(now)
		}
	}
}

type loopTimer struct {
	t     *time.Timer
	state atomic.Int32
}

func (lt *loopTimer) Stop() bool {
	if !lt.state.CompareAndSwap(callbackPending, callbackCancelled) {
		return false
	}
	lt.t.Stop()
	return true
}

type loopFrame struct {
	fn    func(now time.Time)
	state atomic.Int32
}

func (f *loopFrame) Cancel() {
	f.state.CompareAndSwap(callbackPending, callbackCancelled)
}
