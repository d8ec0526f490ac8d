package constants

import "time"

// Host Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MinFrameRate and MaxFrameRate bound the -fps flag
	MinFrameRate = 10
	MaxFrameRate = 120
)

// Rotation Timing
const (
	// DefaultRotationDelay is the dwell between item swaps
	DefaultRotationDelay = 3000 * time.Millisecond

	// DefaultTransitionDuration is the slide in/out duration
	DefaultTransitionDuration = 600 * time.Millisecond

	// WrapPauseFactor multiplies the dwell that starts when rotation lands back on the first item
	WrapPauseFactor = 2

	// MaxRotationDuration bounds the dwell and transition, the wrap pause stays far from overflow
	MaxRotationDuration = 24 * time.Hour
)

// Ambient Gradient
const (
	// DefaultFocalPoints is the number of gradient layers following the pointer
	DefaultFocalPoints = 3

	// DefaultEasing is the per-frame easing of focal point 0, point i uses DefaultEasing/(i+1)
	DefaultEasing = 0.1

	// DefaultFocus is the resting pointer position in percent on both axes
	DefaultFocus = 50.0
)

// Join Scroll
const (
	// JoinScrollDelay is the wait between pressing join and the scroll starting
	JoinScrollDelay = 500 * time.Millisecond

	// JoinScrollDuration is the length of the scroll tween
	JoinScrollDuration = 1600 * time.Millisecond

	// OverlayFadeDuration is the dim overlay fade in and out time
	OverlayFadeDuration = 300 * time.Millisecond

	// OverlayDimLevel is the overlay strength while scrolling (20% black)
	OverlayDimLevel = 0.2
)

// Content Reload
const (
	// ReloadDebounce drops repeated file events for the same path inside this window
	ReloadDebounce = 100 * time.Millisecond
)
