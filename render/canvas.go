package render

import "math"

// Surface is the drawing target entities render onto
// Coordinates are canvas pixels; alpha is source opacity in [0, 1]
type Surface interface {
	Size() (width, height int)
	FillRect(x, y, w, h float64, c RGB, alpha float64)
	StrokeLine(x0, y0, x1, y1, width float64, c RGB, alpha float64)
}

// Canvas is an opaque RGB pixel surface
// Rect edges snap to the nearest pixel; anything drawn covers at least one pixel
type Canvas struct {
	width  int
	height int
	pix    []RGB
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient, and clears
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]RGB, size)
	} else {
		c.pix = c.pix[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets every pixel to black
func (c *Canvas) Clear() {
	clear(c.pix)
}

// Size returns canvas dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the pixel at (x, y), black outside bounds
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

// Row returns the backing slice of row y, nil outside bounds
func (c *Canvas) Row(y int) []RGB {
	if y < 0 || y >= c.height {
		return nil
	}
	return c.pix[y*c.width : (y+1)*c.width]
}

// FillRect composites a solid rectangle
func (c *Canvas) FillRect(x, y, w, h float64, col RGB, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, w)
	y0, y1 := span(y, h)
	x0, x1 = max(x0, 0), min(x1, c.width)
	y0, y1 = max(y0, 0), min(y1, c.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	if alpha >= 1 {
		for py := y0; py < y1; py++ {
			row := c.pix[py*c.width+x0 : py*c.width+x1]
			for i := range row {
				row[i] = col
			}
		}
		return
	}
	for py := y0; py < y1; py++ {
		row := c.pix[py*c.width+x0 : py*c.width+x1]
		for i := range row {
			row[i] = Blend(row[i], col, alpha)
		}
	}
}

// Fade washes the whole canvas with black at alpha
func (c *Canvas) Fade(alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.Clear()
		return
	}
	for i := range c.pix {
		c.pix[i] = Blend(c.pix[i], RGBBlack, alpha)
	}
}

// StrokeLine stamps width-sized squares at unit steps from (x0, y0) to (x1, y1)
// Each pixel is composited once per stroke so overlapping stamps do not accumulate alpha
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col RGB, alpha float64) {
	if alpha <= 0 || width <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	half := width / 2

	var touched map[int]struct{}
	if alpha < 1 {
		touched = make(map[int]struct{}, (steps+1)*int(math.Ceil(width)))
	}

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx, cy := x0+dx*t, y0+dy*t
		px0, px1 := span(cx-half, width)
		py0, py1 := span(cy-half, width)
		for py := max(py0, 0); py < min(py1, c.height); py++ {
			for px := max(px0, 0); px < min(px1, c.width); px++ {
				idx := py*c.width + px
				if touched != nil {
					if _, seen := touched[idx]; seen {
						continue
					}
					touched[idx] = struct{}{}
				}
				c.pix[idx] = Blend(c.pix[idx], col, alpha)
			}
		}
	}
}

// span snaps [start, start+length) to whole pixels, never empty
func span(start, length float64) (int, int) {
	lo := int(math.Round(start))
	hi := int(math.Round(start + length))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
