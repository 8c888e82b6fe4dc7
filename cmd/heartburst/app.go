package main

import (
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/heartburst/audio"
	"github.com/lixenwraith/heartburst/config"
	"github.com/lixenwraith/heartburst/engine"
	"github.com/lixenwraith/heartburst/glyph"
	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/show"
	"github.com/lixenwraith/heartburst/status"
	"github.com/lixenwraith/heartburst/vmath"
)

// app owns the screen and the show; every method runs on the frame loop goroutine
type app struct {
	screen    tcell.Screen
	presenter *render.Presenter
	canvas    *render.Canvas
	sampler   *glyph.Sampler
	clock     *engine.PausableClock
	driver    *show.Driver
	choreo    *show.Choreographer
	hud       *render.HUD
	player    audio.Player
	reg       *status.Registry
	meter     status.FrameMeter

	statFPS    *status.AtomicFloat
	statPaused *atomic.Bool
	statMuted  *atomic.Bool
}

// newApp builds the show on an initialized screen and starts the first session
func newApp(screen tcell.Screen, cfg *config.Config, player audio.Player, clock *engine.PausableClock, seed uint64) (*app, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	presenter := render.NewPresenter(screen, cfg.Display.DotSize)
	w, h := presenter.SurfaceSize()
	sampler, err := glyph.NewSampler(w, h)
	if err != nil {
		return nil, err
	}

	sched := engine.NewScheduler(clock)
	rng := vmath.NewRand(seed)
	script := show.Script{
		Message:    cfg.Message,
		Initial:    cfg.Initial,
		FinalLines: [2]string{cfg.FinalLines[0], cfg.FinalLines[1]},
		Palette:    palette,
		Glow:       config.MustParseColors(parameter.GlowColors),
		Heart:      config.MustParseColors(parameter.HeartColors),
	}
	choreo := show.NewChoreographer(script, sampler, sched, rng, player)
	canvas := render.NewCanvas(w, h)
	reg := status.NewRegistry()

	a := &app{
		screen:     screen,
		presenter:  presenter,
		canvas:     canvas,
		sampler:    sampler,
		clock:      clock,
		driver:     show.NewDriver(choreo, sched, canvas, rng, clock.Now(), reg),
		choreo:     choreo,
		hud:        render.NewHUD(cfg.Display.FPS, parameter.HUDSpringFrequency, parameter.HUDSpringDamping),
		player:     player,
		reg:        reg,
		statFPS:    reg.Floats.Get(status.KeyFPS),
		statPaused: reg.Bools.Get(status.KeyPaused),
		statMuted:  reg.Bools.Get(status.KeyMuted),
	}
	a.restart(a.driver.Resize(w, h))
	return a, nil
}

// restart reports the outcome of a session start; a surface too small for the
// message keeps the decorative show running without the main rocket
func (a *app) restart(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, show.ErrNoTargets) {
		log.Printf("heartburst: %v; waiting for a larger terminal", err)
		return
	}
	log.Printf("heartburst: restart failed: %v", err)
}

// handleEvent applies one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch keyAction(ev) {
		case actionQuit:
			return false
		case actionPause:
			paused := a.clock.Toggle()
			log.Printf("heartburst: paused=%v", paused)
		case actionRestart:
			a.restart(a.driver.Restart())
		case actionMute:
			a.player.SetMuted(!a.player.Muted())
		case actionHUD:
			a.hud.Toggle()
		}
	case *tcell.EventResize:
		a.screen.Sync()
		a.presenter.Resize()
		w, h := a.presenter.SurfaceSize()
		log.Printf("heartburst: resize to %dx%d px", w, h)
		a.restart(a.driver.Resize(w, h))
	}
	return true
}

// frame advances the show unless paused and presents it
func (a *app) frame() {
	if !a.clock.IsPaused() {
		a.driver.Tick(a.clock.Now())
	}

	a.statFPS.Set(a.meter.Tick(time.Now()))
	a.statPaused.Store(a.clock.IsPaused())
	a.statMuted.Store(a.player.Muted())

	a.presenter.Compose(a.canvas)
	a.hud.Update()
	a.hud.Draw(a.presenter.Buffer(), a.reg.Lines())
	a.presenter.Show()
}

// close releases font faces
func (a *app) close() {
	if err := a.sampler.Close(); err != nil {
		log.Printf("heartburst: %v", err)
	}
}

// run drives frames at fps until quit, a closed event stream or a signal
func (a *app) run(fps int, events <-chan tcell.Event, stop <-chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-stop:
			return
		case <-ticker.C:
			a.frame()
		}
	}
}
