package render

import (
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/daml/herofx/ambient"
	"github.com/daml/herofx/constants"
	"github.com/daml/herofx/content"
	"github.com/daml/herofx/rotator"
)

// Frame is everything the hero needs to draw one instant
type Frame struct {
	Now      time.Time
	Points   []ambient.Point
	Opacity  float64
	Snapshot rotator.Snapshot
	Offset   float64 // Scroll offset in rows
	Dim      float64 // Overlay level
	Hover    bool    // Pointer over the join button
}

// Rect is a cell rectangle
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether x, y falls inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Hero composes the banner page and the join section below it
type Hero struct {
	mu       sync.Mutex
	content  *content.Hero
	gradient *Gradient
	buf      *Buffer
	button   Rect
	page     int
}

// NewHero creates a renderer for c
func NewHero(c *content.Hero) (*Hero, error) {
	h := &Hero{buf: NewBuffer(0, 0)}
	if err := h.SetContent(c); err != nil {
		return nil, err
	}
	return h, nil
}

// SetContent swaps the document, palettes are parsed up front
func (h *Hero) SetContent(c *content.Hero) error {
	base, err := c.BaseColors()
	if err != nil {
		return errors.Wrap(err, "hero base palette")
	}
	colors, err := c.Colors()
	if err != nil {
		return errors.Wrap(err, "hero glow palette")
	}

	h.mu.Lock()
	h.content = c
	h.gradient = NewGradient(base, colors)
	h.mu.Unlock()
	return nil
}

// ButtonAt reports whether the cell x, y is on the join button as last drawn
func (h *Hero) ButtonAt(x, y int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.button.Contains(x, y)
}

// PageHeight is the scrolling area of a screen, the last row is the status bar
func PageHeight(screenHeight int) int {
	return max(screenHeight-1, 1)
}

// JoinOffset is the scroll offset that brings the join section to the top
func (h *Hero) JoinOffset() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return float64(h.page)
}

// Draw composes f onto screen, the caller shows the screen
func (h *Hero) Draw(screen tcell.Screen, f Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	width, height := screen.Size()
	if w, hh := h.buf.Bounds(); w != width || hh != height {
		h.buf.Resize(width, height)
	}
	if width <= 0 || height <= 0 {
		return
	}

	page := PageHeight(height)
	h.page = page
	shift := int(math.Round(f.Offset))

	h.drawBackground(page, shift, f)
	h.drawBanner(page, shift, f)
	h.drawJoin(page, shift)
	h.buf.DimAll(f.Dim)
	h.drawStatus(height - 1)

	h.buf.Flush(screen)
}

// drawBackground paints the gradient for banner rows and a flat fill below
func (h *Hero) drawBackground(page, shift int, f Frame) {
	width, _ := h.buf.Bounds()
	for y := 0; y < page; y++ {
		row := y + shift
		if row >= page {
			for x := 0; x < width; x++ {
				h.buf.SetBg(x, y, RgbJoinBg)
			}
			continue
		}
		py := (float64(row) + 0.5) / float64(page) * 100
		for x := 0; x < width; x++ {
			px := (float64(x) + 0.5) / float64(width) * 100
			h.buf.SetBg(x, y, h.gradient.At(px, py, f.Points, f.Opacity))
		}
	}
}

func (h *Hero) drawBanner(page, shift int, f Frame) {
	width, _ := h.buf.Bounds()
	left := constants.HeroLeftMargin
	maxX := width - 1
	y := int(float64(page)*constants.TitleTopRatio) - shift

	for _, line := range h.content.Title {
		h.textRow(left, y, page, maxX, line, RgbTitle, tcell.AttrBold)
		y++
	}
	y += constants.RotatorGap

	if y >= 0 && y < page {
		RotatorLine{X: left, Y: y, Width: maxX - left, Fg: RgbRotator, Attrs: tcell.AttrBold}.
			Draw(h.buf, f.Snapshot, f.Now)
	}
	y++

	if h.content.Tagline != "" {
		y++
		h.textRow(left, y, page, maxX, h.content.Tagline, RgbTagline, tcell.AttrNone)
		y++
	}

	h.button = Rect{}
	if label := h.content.Join.Label; label != "" {
		y++
		text := " " + label + " "
		fg, bg := RgbButtonText, RgbButtonBg
		if f.Hover {
			fg, bg = bg, fg
		}
		end := min(left+runewidth.StringWidth(text), maxX)
		if y >= 0 && y < page {
			for x := left; x < end; x++ {
				h.buf.SetBg(x, y, bg)
			}
			h.buf.Text(left, y, left, end, text, fg, 1, tcell.AttrBold)
			h.button = Rect{X: left, Y: y, Width: end - left, Height: 1}
		}
	}
}

// drawJoin renders the section that starts one page below the banner
func (h *Hero) drawJoin(page, shift int) {
	width, _ := h.buf.Bounds()
	join := h.content.Join
	y := page - shift + 2

	h.textRow(constants.HeroLeftMargin, y, page, width-1, join.Heading, RgbTitle, tcell.AttrBold)
	y += 2
	for _, line := range join.Lines {
		h.textRow(constants.HeroLeftMargin, y, page, width-1, line, RgbJoinText, tcell.AttrNone)
		y++
	}
}

func (h *Hero) drawStatus(y int) {
	width, _ := h.buf.Bounds()
	for x := 0; x < width; x++ {
		h.buf.SetBg(x, y, RgbStatusBg)
	}
	h.buf.Text(0, y, 0, width, constants.StatusHint, RgbStatusText, 1, tcell.AttrNone)
}

// textRow writes one line when y is inside the scrolling area
func (h *Hero) textRow(x, y, page, maxX int, s string, fg RGB, attrs tcell.AttrMask) {
	if y < 0 || y >= page || s == "" {
		return
	}
	h.buf.Text(x, y, x, maxX, s, fg, 1, attrs)
}
