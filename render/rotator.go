package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/daml/herofx/rotator"
	"github.com/daml/herofx/tween"
)

// RotatorLine draws the rotating subtitle into a one-row region
// The entering item slides in from the right edge and fades in, the exiting
// item slides out past the left edge and fades out
type RotatorLine struct {
	X, Y  int
	Width int
	Fg    RGB
	Attrs tcell.AttrMask
}

// Draw renders snap at now, items other than current and previous are never drawn
func (l RotatorLine) Draw(buf *Buffer, snap rotator.Snapshot, now time.Time) {
	if l.Width <= 0 {
		return
	}
	maxX := l.X + l.Width
	eased := tween.EaseOutCubic(snap.Progress(now))

	if text, ok := snap.Exiting(); ok && eased < 1 {
		shift := int(math.Round(eased * float64(l.Width)))
		buf.Text(l.X-shift, l.Y, l.X, maxX, text, l.Fg, 1-eased, l.Attrs)
	}

	if text := snap.Text(); text != "" {
		shift := int(math.Round((1 - eased) * float64(l.Width)))
		buf.Text(l.X+shift, l.Y, l.X, maxX, text, l.Fg, eased, l.Attrs)
	}
}
