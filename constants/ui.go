package constants

// Gradient Layout (percent units)
const (
	// FocalOffsetX and FocalOffsetY shift layer i by (i*X, i*Y) from its focal point
	FocalOffsetX = 10.0
	FocalOffsetY = 5.0

	// GlowInnerRadius is where a layer's alpha drops to GlowInnerAlpha
	GlowInnerRadius = 40.0

	// GlowOuterRadius is where a layer becomes transparent
	GlowOuterRadius = 70.0

	// GlowCenterAlpha is 0x80, GlowInnerAlpha is 0x44
	GlowCenterAlpha = 128.0 / 255.0
	GlowInnerAlpha  = 68.0 / 255.0
)

// Hero Layout (rows)
const (
	// TitleTopRatio places the title block at this fraction of the screen height
	TitleTopRatio = 0.3

	// HeroLeftMargin is the column where hero text starts
	HeroLeftMargin = 6

	// RotatorGap is the number of blank rows between title and rotator
	RotatorGap = 1
)

// Status Bar
const (
	StatusHint = " enter: join  r: reload  q: quit "
)
