package engine

import (
	"sort"
	"sync"
	"time"
)

// MockScheduler provides controllable virtual time for testing timed components
// Timers fire only from Advance and frames only from StepFrame, both on the calling goroutine
type MockScheduler struct {
	mu          sync.Mutex
	currentTime time.Time
	seq         uint64

	timers []*mockTimer
	frames []*mockFrame

	timersScheduled int
	framesRequested int
}

// NewMockScheduler creates a new mock scheduler with the given start time
func NewMockScheduler(startTime time.Time) *MockScheduler {
	return &MockScheduler{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// AfterFunc registers fn to fire once virtual time reaches now+d
func (m *MockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.timersScheduled++
	t := &mockTimer{
		owner:    m,
		deadline: m.currentTime.Add(d),
		seq:      m.seq,
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// RequestFrame registers fn for the next StepFrame
func (m *MockScheduler) RequestFrame(fn func(now time.Time)) Frame {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.framesRequested++
	f := &mockFrame{owner: m, fn: fn}
	m.frames = append(m.frames, f)
	return f
}

// Advance moves virtual time forward by d, firing every timer due within the window
// Timers fire in deadline order with scheduling order breaking ties, and timers
// scheduled by a fired callback fire too when their deadline falls inside the window
func (m *MockScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	end := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(end)
		if next == nil {
			m.currentTime = end
			m.mu.Unlock()
			return
		}
		m.removeTimerLocked(next)
		m.currentTime = next.deadline
		m.mu.Unlock()

		// Callbacks run unlocked so they can schedule and cancel freely
		next.fn()
	}
}

// StepFrame fires the frame callbacks pending at call time and returns how many ran
// Frames requested from inside a callback wait for the next StepFrame
func (m *MockScheduler) StepFrame() int {
	m.mu.Lock()
	batch := m.frames
	m.frames = nil
	now := m.currentTime
	m.mu.Unlock()

	fired := 0
	for _, f := range batch {
		m.mu.Lock()
		cancelled := f.cancelled
		m.mu.Unlock()
		if cancelled {
			continue
		}
		f.fn(now)
		fired++
	}
	return fired
}

// StepFrames fires n frame batches, advancing virtual time by interval before each
func (m *MockScheduler) StepFrames(n int, interval time.Duration) {
	for i := 0; i < n; i++ {
		m.Advance(interval)
		m.StepFrame()
	}
}

// PendingTimers returns the number of timers waiting to fire
func (m *MockScheduler) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// PendingFrames returns the number of frame callbacks waiting for StepFrame
func (m *MockScheduler) PendingFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

// TimersScheduled returns the total number of AfterFunc calls
func (m *MockScheduler) TimersScheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timersScheduled
}

// FramesRequested returns the total number of RequestFrame calls
func (m *MockScheduler) FramesRequested() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.framesRequested
}

func (m *MockScheduler) nextDueLocked(end time.Time) *mockTimer {
	if len(m.timers) == 0 {
		return nil
	}
	m.sortLocked()
	if m.timers[0].deadline.After(end) {
		return nil
	}
	return m.timers[0]
}

func (m *MockScheduler) sortLocked() {
	sort.SliceStable(m.timers, func(i, j int) bool {
		a, b := m.timers[i], m.timers[j]
		if a.deadline.Equal(b.deadline) {
			return a.seq < b.seq
		}
		return a.deadline.Before(b.deadline)
	})
}

func (m *MockScheduler) removeTimerLocked(t *mockTimer) bool {
	for i, pending := range m.timers {
		if pending == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

func (m *MockScheduler) removeFrameLocked(f *mockFrame) {
	for i, pending := range m.frames {
		if pending == f {
			m.frames = append(m.frames[:i], m.frames[i+1:]...)
			return
		}
	}
}

type mockTimer struct {
	owner    *MockScheduler
	deadline time.Time
	seq      uint64
	fn       func()
}

func (t *mockTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.owner.removeTimerLocked(t)
}

type mockFrame struct {
	owner     *MockScheduler
	fn        func(now time.Time)
	cancelled bool
}

func (f *mockFrame) Cancel() {
	f.owner.mu.Lock()
	defer f.owner.mu.Unlock()
	f.cancelled = true
	f.owner.removeFrameLocked(f)
}
