package tween

// Easing maps linear progress t in [0,1] to eased progress
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// EaseInOutQuad accelerates through the first half and decelerates through the second
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutCubic decelerates toward the end, close to the slide curve of the rotator
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Clamp01 limits t to [0,1]
func Clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
