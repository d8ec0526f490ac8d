package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
// Rune 0 marks the trailing column of a wide rune drawn in the cell to its left
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// Buffer is a compositor of cells flushed to a tcell.Screen in one pass
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y, the zero cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg paints a blank cell
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: bg, Bg: bg}
}

// SetFgOnly writes rune, foreground and attrs while preserving existing background
func (b *Buffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetWithBg writes a cell with explicit fg and bg colors
func (b *Buffer) SetWithBg(x, y int, r rune, fg, bg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
}

// Text writes s from x, clipped to maxX, and returns the column after the last rune
// Runes left of clipX are skipped so text can slide in from outside a region
// Columns advance by display width, a wide rune is drawn only when both its columns are visible
func (b *Buffer) Text(x, y, clipX, maxX int, s string, fg RGB, alpha float64, attrs tcell.AttrMask) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		if x >= clipX && b.inBounds(x, y) && b.inBounds(x+w-1, y) {
			b.splitWide(x, y)
			b.splitWide(x+w-1, y)
			bg := b.cells[y*b.width+x].Bg
			b.SetFgOnly(x, y, r, Blend(bg, fg, alpha), attrs)
			for i := 1; i < w; i++ {
				b.SetFgOnly(x+i, y, 0, fg, attrs)
			}
		}
		x += w
	}
	return x
}

// splitWide blanks the other half of a wide rune that a write at x, y lands on
func (b *Buffer) splitWide(x, y int) {
	row := y * b.width
	if b.cells[row+x].Rune == 0 && x > 0 {
		b.cells[row+x-1].Rune = ' '
	}
	if x+1 < b.width && b.cells[row+x+1].Rune == 0 {
		b.cells[row+x+1].Rune = ' '
	}
}

// DimAll blends every cell toward black
func (b *Buffer) DimAll(level float64) {
	if level <= 0 {
		return
	}
	for i := range b.cells {
		b.cells[i].Fg = Dim(b.cells[i].Fg, level)
		b.cells[i].Bg = Dim(b.cells[i].Bg, level)
	}
}

// Flush writes the buffer to screen, the caller shows the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(c.Fg.Tcell()).
				Background(c.Bg.Tcell()).
				Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
