package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/daml/herofx/ambient"
	"github.com/daml/herofx/constants"
)

// Gradient computes the ambient background: a diagonal base gradient under
// one radial glow per focal point
type Gradient struct {
	base   []colorful.Color
	colors []colorful.Color
}

// NewGradient creates a gradient from base stops and glow colours
// Glow colours are assigned to layers cyclically
func NewGradient(base, colors []colorful.Color) *Gradient {
	return &Gradient{base: base, colors: colors}
}

// Base returns the 135 degree gradient colour at percent coordinates
func (g *Gradient) Base(x, y float64) colorful.Color {
	switch len(g.base) {
	case 0:
		return colorful.Color{}
	case 1:
		return g.base[0]
	}

	// Projection onto the top-left to bottom-right diagonal
	t := (x + y) / 200.0
	t = math.Max(0, math.Min(1, t))

	segments := float64(len(g.base) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(g.base)-1 {
		return g.base[len(g.base)-1]
	}
	return g.base[i].BlendRgb(g.base[i+1], pos-float64(i))
}

// GlowAlpha returns a layer's alpha at distance d from its centre
func GlowAlpha(d float64) float64 {
	switch {
	case d <= 0:
		return constants.GlowCenterAlpha
	case d < constants.GlowInnerRadius:
		f := d / constants.GlowInnerRadius
		return constants.GlowCenterAlpha + (constants.GlowInnerAlpha-constants.GlowCenterAlpha)*f
	case d < constants.GlowOuterRadius:
		f := (d - constants.GlowInnerRadius) / (constants.GlowOuterRadius - constants.GlowInnerRadius)
		return constants.GlowInnerAlpha * (1 - f)
	default:
		return 0
	}
}

// LayerCenter returns the glow centre of layer i for its focal point
func LayerCenter(i int, p ambient.Point) ambient.Point {
	return ambient.Point{
		X: p.X + float64(i)*constants.FocalOffsetX,
		Y: p.Y + float64(i)*constants.FocalOffsetY,
	}
}

// At composites the base and all glow layers at percent coordinates
// Later layers are stacked above earlier ones, opacity scales every layer
func (g *Gradient) At(x, y float64, points []ambient.Point, opacity float64) RGB {
	c := FromColorful(g.Base(x, y))
	if len(g.colors) == 0 || opacity <= 0 {
		return c
	}

	here := ambient.Point{X: x, Y: y}
	for i, p := range points {
		alpha := GlowAlpha(here.Distance(LayerCenter(i, p))) * opacity
		if alpha <= 0 {
			continue
		}
		c = Blend(c, FromColorful(g.colors[i%len(g.colors)]), alpha)
	}
	return c
}
