package render

import "github.com/gdamore/tcell/v2"

// Presenter maps a Canvas onto terminal cells
// Every cell shows two square dots of dot×dot canvas pixels; each dot takes the
// per-channel maximum of its pixels so thin particles survive the downsample
type Presenter struct {
	screen tcell.Screen
	buf    *RenderBuffer
	dot    int
}

// NewPresenter creates a presenter sized to the current screen
func NewPresenter(screen tcell.Screen, dot int) *Presenter {
	p := &Presenter{
		screen: screen,
		buf:    NewRenderBuffer(0, 0),
		dot:    max(dot, 1),
	}
	p.Resize()
	return p
}

// Resize re-reads the screen size
func (p *Presenter) Resize() {
	w, h := p.screen.Size()
	p.buf.Resize(w, h)
}

// SurfaceSize returns the canvas dimensions that exactly cover the screen
func (p *Presenter) SurfaceSize() (int, int) {
	w, h := p.buf.Bounds()
	return w * p.dot, h * 2 * p.dot
}

// Buffer exposes the cell grid for overlays drawn after Compose
func (p *Presenter) Buffer() *RenderBuffer {
	return p.buf
}

// Compose downsamples the canvas into the cell buffer
func (p *Presenter) Compose(c *Canvas) {
	w, h := p.buf.Bounds()
	for cy := 0; cy < h; cy++ {
		topY := cy * 2 * p.dot
		for cx := 0; cx < w; cx++ {
			x0 := cx * p.dot
			top := p.pool(c, x0, topY)
			bottom := p.pool(c, x0, topY+p.dot)
			p.buf.SetDots(cx, cy, top, bottom)
		}
	}
}

// pool returns the channel-wise max over one dot
func (p *Presenter) pool(c *Canvas, x0, y0 int) RGB {
	var out RGB
	for y := y0; y < y0+p.dot; y++ {
		row := c.Row(y)
		if row == nil {
			break
		}
		x1 := min(x0+p.dot, len(row))
		for x := x0; x < x1; x++ {
			out = Max(out, row[x])
		}
	}
	return out
}

// Show flushes the buffer and presents the frame
func (p *Presenter) Show() {
	p.buf.FlushToScreen(p.screen)
	p.screen.Show()
}
