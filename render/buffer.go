package render

import "github.com/gdamore/tcell/v2"

// HalfBlock is the upper half block; fg paints the top dot, bg the bottom dot
const HalfBlock = '▀'

// Cell is one terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

var emptyCell = Cell{Rune: ' ', Fg: RGBBlack, Bg: RGBBlack}

// RenderBuffer is a row-major cell grid flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
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

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), empty outside bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetDots writes a half-block cell from its top and bottom dot colors
func (b *RenderBuffer) SetDots(x, y int, top, bottom RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if top.IsBlack() && bottom.IsBlack() {
		*dst = emptyCell
		return
	}
	*dst = Cell{Rune: HalfBlock, Fg: top, Bg: bottom}
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Bold: bold}
}

// SetString writes s from (x, y) rightwards, clipped at the buffer edge
func (b *RenderBuffer) SetString(x, y int, s string, fg, bg RGB, bold bool) {
	for _, r := range s {
		if x >= b.width {
			return
		}
		b.SetWithBg(x, y, r, fg, bg, bold)
		x++
	}
}

// FlushToScreen writes every cell to the screen, Show is left to the caller
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			style := tcell.StyleDefault.
				Foreground(toTcell(c.Fg)).
				Background(toTcell(c.Bg)).
				Bold(c.Bold)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}

// toTcell converts RGB to tcell.Color
func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
