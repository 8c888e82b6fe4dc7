package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestPresenterSurfaceSize(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	p := NewPresenter(s, 3)
	if w, h := p.SurfaceSize(); w != 60 || h != 60 {
		t.Errorf("SurfaceSize = %dx%d, want 60x60", w, h)
	}
}

func TestPresenterComposeHalfBlocks(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	p := NewPresenter(s, 2)
	w, h := p.SurfaceSize()
	c := NewCanvas(w, h)

	red := RGB{255, 0, 80}
	// One pixel inside the top dot of cell (1,0)
	c.FillRect(3, 1, 1, 1, red, 1)
	// One pixel inside the bottom dot of cell (2,1)
	c.FillRect(5, 7, 1, 1, RGBGold, 1)

	p.Compose(c)
	buf := p.Buffer()

	if got := buf.Get(1, 0); got.Rune != HalfBlock || got.Fg != red || got.Bg != RGBBlack {
		t.Errorf("cell (1,0) = %+v", got)
	}
	if got := buf.Get(2, 1); got.Rune != HalfBlock || got.Fg != RGBBlack || got.Bg != RGBGold {
		t.Errorf("cell (2,1) = %+v", got)
	}
	if got := buf.Get(0, 0); got.Rune != ' ' {
		t.Errorf("empty cell = %+v", got)
	}

	p.Show()
	mainc, _, style, _ := s.GetContent(1, 0)
	if mainc != HalfBlock {
		t.Errorf("screen rune = %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 80) {
		t.Errorf("screen fg = %v", fg)
	}
}

func TestPresenterResize(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	p := NewPresenter(s, 1)
	s.SetSize(30, 12)
	p.Resize()
	if w, h := p.SurfaceSize(); w != 30 || h != 24 {
		t.Errorf("SurfaceSize after resize = %dx%d", w, h)
	}
}

func TestHUDSlides(t *testing.T) {
	h := NewHUD(60, 7, 0.8)
	if h.Progress() != 0 {
		t.Fatal("HUD should start hidden")
	}
	h.Toggle()
	for i := 0; i < 120; i++ {
		h.Update()
	}
	if h.Progress() < 0.95 {
		t.Errorf("HUD progress after 2s = %f", h.Progress())
	}

	buf := NewRenderBuffer(20, 5)
	h.Draw(buf, []string{"fps 60", "text 10"})
	if got := buf.Get(1, 3); got.Rune != 'f' {
		t.Errorf("first HUD line not at row 3: %+v", got)
	}
	if got := buf.Get(1, 4); got.Rune != 't' {
		t.Errorf("second HUD line not at row 4: %+v", got)
	}

	h.Toggle()
	for i := 0; i < 240; i++ {
		h.Update()
	}
	if h.Progress() != 0 {
		t.Errorf("HUD should settle hidden, progress %f", h.Progress())
	}
}
