package render

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// HUD colors
var (
	RGBHUDText = RGB{255, 230, 235}
	RGBHUDKey  = RGB{255, 51, 102}
	RGBHUDBg   = RGB{24, 10, 16}
)

// HUD is a bottom-anchored info panel that slides in and out on a spring
type HUD struct {
	spring  harmonica.Spring
	pos     float64 // 0 hidden, 1 fully shown
	vel     float64
	visible bool
}

// NewHUD creates a hidden HUD whose spring is stepped once per frame at fps
func NewHUD(fps int, frequency, damping float64) *HUD {
	return &HUD{
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), frequency, damping),
	}
}

// Toggle flips the target visibility
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports the target visibility
func (h *HUD) Visible() bool {
	return h.visible
}

// Progress reports how far the panel is slid in, 0..1
func (h *HUD) Progress() float64 {
	return math.Max(0, math.Min(1, h.pos))
}

// Update advances the spring one frame
func (h *HUD) Update() {
	target := 0.0
	if h.visible {
		target = 1.0
	}
	h.pos, h.vel = h.spring.Update(h.pos, h.vel, target)
	if !h.visible && h.pos < 0.01 && math.Abs(h.vel) < 0.01 {
		h.pos, h.vel = 0, 0
	}
}

// Draw writes lines into the bottom rows of buf, offset by the slide progress
func (h *HUD) Draw(buf *RenderBuffer, lines []string) {
	shown := int(math.Round(h.Progress() * float64(len(lines))))
	if shown == 0 {
		return
	}
	w, height := buf.Bounds()
	top := height - shown
	for i, line := range lines[:shown] {
		y := top + i
		for x := 0; x < w; x++ {
			buf.SetWithBg(x, y, ' ', RGBHUDText, RGBHUDBg, false)
		}
		buf.SetString(1, y, line, RGBHUDText, RGBHUDBg, i == 0)
	}
	if w > 2 {
		buf.SetWithBg(w-2, top, '♥', RGBHUDKey, RGBHUDBg, true)
	}
}
