package ambient

import "math"

// Point is a coordinate in percent units of the bound container
// Values outside [0,100] are legal, clipping is the renderer's concern
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between p and q
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Toward moves p the fraction k of the remaining distance to target
func (p Point) Toward(target Point, k float64) Point {
	return Point{
		X: p.X + (target.X-p.X)*k,
		Y: p.Y + (target.Y-p.Y)*k,
	}
}

// State is the focal point model: N points easing toward one target
type State struct {
	Points []Point
	Target Point
	Easing float64 // Easing of point 0
}

// NewState returns count copies of initial with the target resting on initial
func NewState(count int, initial Point, easing float64) State {
	points := make([]Point, count)
	for i := range points {
		points[i] = initial
	}
	return State{
		Points: points,
		Target: initial,
		Easing: easing,
	}
}

// EasingAt returns the easing factor of point i, strictly decreasing in i
func (s State) EasingAt(i int) float64 {
	return s.Easing / float64(i+1)
}

// Step eases every point toward the target once
// The returned state owns a fresh Points slice
func Step(s State) State {
	next := make([]Point, len(s.Points))
	for i, p := range s.Points {
		next[i] = p.Toward(s.Target, s.EasingAt(i))
	}
	s.Points = next
	return s
}
