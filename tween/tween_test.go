package tween

import (
	"math"
	"testing"
	"time"

	"github.com/daml/herofx/engine"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]Easing{
		"linear":    Linear,
		"inOutQuad": EaseInOutQuad,
		"outCubic":  EaseOutCubic,
	}
	for name, fn := range easings {
		if fn(0) != 0 {
			t.Errorf("%s(0) = %v, expected 0", name, fn(0))
		}
		if math.Abs(fn(1)-1) > 1e-12 {
			t.Errorf("%s(1) = %v, expected 1", name, fn(1))
		}
	}

	if EaseInOutQuad(0.5) != 0.5 {
		t.Errorf("Expected EaseInOutQuad(0.5) = 0.5, got %v", EaseInOutQuad(0.5))
	}
	if EaseInOutQuad(0.25) != 0.125 {
		t.Errorf("Expected EaseInOutQuad(0.25) = 0.125, got %v", EaseInOutQuad(0.25))
	}
	if !(EaseOutCubic(0.5) > 0.5) {
		t.Error("Expected EaseOutCubic to lead linear progress")
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 out of range")
	}
}

func TestTweenRunsToCompletion(t *testing.T) {
	mock := engine.NewMockScheduler(testEpoch)

	var updates []float64
	done := 0
	tw := Start(mock, Spec{
		From:     10,
		To:       20,
		Duration: 100 * time.Millisecond,
		OnUpdate: func(v float64) { updates = append(updates, v) },
		OnDone:   func() { done++ },
	})

	mock.StepFrames(3, 25*time.Millisecond)
	if tw.Done() {
		t.Fatal("Tween finished early")
	}
	if tw.Value() != 17.5 {
		t.Errorf("Expected 17.5 at 75ms, got %v", tw.Value())
	}

	mock.StepFrames(2, 25*time.Millisecond)
	if !tw.Done() {
		t.Fatal("Tween did not finish")
	}
	if tw.Value() != 20 {
		t.Errorf("Expected final value 20, got %v", tw.Value())
	}
	if done != 1 {
		t.Errorf("Expected OnDone once, got %d", done)
	}
	if updates[0] != 12.5 {
		t.Errorf("Expected first linear update 12.5, got %v", updates[0])
	}
	for i := 1; i < len(updates); i++ {
		if updates[i] < updates[i-1] {
			t.Errorf("Update %d decreased: %v -> %v", i, updates[i-1], updates[i])
		}
	}
	if mock.PendingFrames() != 0 {
		t.Errorf("Finished tween left %d frames pending", mock.PendingFrames())
	}
}

func TestTweenZeroDuration(t *testing.T) {
	mock := engine.NewMockScheduler(testEpoch)
	tw := Start(mock, Spec{From: 0, To: 1})

	mock.StepFrame()
	if !tw.Done() || tw.Value() != 1 {
		t.Errorf("Expected zero-length tween done at 1, got done=%v value=%v", tw.Done(), tw.Value())
	}
}

func TestTweenCancel(t *testing.T) {
	mock := engine.NewMockScheduler(testEpoch)
	done := false
	tw := Start(mock, Spec{From: 0, To: 100, Duration: time.Second, OnDone: func() { done = true }})

	mock.StepFrames(2, 100*time.Millisecond)
	v := tw.Value()
	tw.Cancel()
	tw.Cancel()
	mock.StepFrames(20, 100*time.Millisecond)

	if tw.Value() != v {
		t.Errorf("Value changed after cancel: %v -> %v", v, tw.Value())
	}
	if done || tw.Done() {
		t.Error("Cancelled tween reported done")
	}
}
