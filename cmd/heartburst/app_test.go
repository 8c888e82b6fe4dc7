package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/heartburst/audio"
	"github.com/lixenwraith/heartburst/config"
	"github.com/lixenwraith/heartburst/engine"
	"github.com/lixenwraith/heartburst/show"
)

func newTestApp(t *testing.T, cols, rows int) (*app, tcell.SimulationScreen, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Message = "TE AMO"
	wall := engine.NewMockTimeProvider(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC))
	a, err := newApp(screen, cfg, &audio.Nop{}, engine.NewPausableClockFrom(wall), 7)
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	t.Cleanup(a.close)
	return a, screen, wall
}

func TestAppLaunchesAndDraws(t *testing.T) {
	a, screen, wall := newTestApp(t, 120, 40)
	if a.choreo.Phase() != show.PhaseInit {
		t.Fatalf("phase = %s, want init", a.choreo.Phase())
	}

	wall.Advance(1000 * time.Millisecond)
	for i := 0; i < 5; i++ {
		a.frame()
		wall.Advance(16 * time.Millisecond)
	}
	if a.choreo.Phase() != show.PhaseLaunch {
		t.Fatalf("phase = %s, want launch", a.choreo.Phase())
	}

	// The main rocket is white on the bottom half of the screen
	lit := 0
	cols, rows := screen.Size()
	for y := rows / 2; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r != ' ' {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("nothing drawn in the lower half after launch")
	}
}

func TestAppPauseFreezesShow(t *testing.T) {
	a, _, wall := newTestApp(t, 120, 40)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	wall.Advance(5 * time.Second)
	a.frame()
	if a.choreo.Phase() != show.PhaseInit {
		t.Fatalf("show advanced while paused: %s", a.choreo.Phase())
	}
	if !a.statPaused.Load() {
		t.Error("pause not published")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	wall.Advance(time.Second)
	a.frame()
	if a.choreo.Phase() != show.PhaseLaunch {
		t.Errorf("phase after resume = %s, want launch", a.choreo.Phase())
	}
}

func TestAppControls(t *testing.T) {
	a, screen, wall := newTestApp(t, 120, 40)

	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)); !a.player.Muted() {
		t.Error("m did not mute")
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	if !a.hud.Visible() {
		t.Error("tab did not show the HUD")
	}

	wall.Advance(time.Second)
	a.frame()
	if a.choreo.Phase() != show.PhaseLaunch {
		t.Fatalf("phase = %s", a.choreo.Phase())
	}
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if a.choreo.Phase() != show.PhaseInit {
		t.Errorf("restart left phase %s", a.choreo.Phase())
	}

	screen.SetSize(80, 24)
	a.handleEvent(tcell.NewEventResize(80, 24))
	if w, h := a.canvas.Size(); w != 80*4 || h != 24*8 {
		t.Errorf("canvas = %dx%d after resize, want 320x192", w, h)
	}

	if a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q did not quit")
	}
}

func TestAppRunStops(t *testing.T) {
	a, _, _ := newTestApp(t, 40, 12)
	events := make(chan tcell.Event)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		a.run(60, events, stop)
		close(done)
	}()
	close(stop)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after stop")
	}
}
