package render

// Hero palette
var (
	RgbTitle      = RGBWhite
	RgbRotator    = RGB{217, 213, 213}
	RgbTagline    = RGB{200, 200, 210}
	RgbButtonBg   = RGBWhite
	RgbButtonText = RGB{31, 41, 55}
	RgbJoinBg     = RGB{31, 41, 55}
	RgbJoinText   = RGB{229, 231, 235}
	RgbStatusBg   = RGB{15, 23, 42}
	RgbStatusText = RGB{148, 163, 184}
)
