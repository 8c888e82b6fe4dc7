package show

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/heartburst/engine"
	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/particle"
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/status"
	"github.com/lixenwraith/heartburst/vmath"
)

// Driver advances and draws one frame per Tick
// All session mutation, timer callbacks included, happens inside Tick
type Driver struct {
	choreo *Choreographer
	sched  *engine.Scheduler
	canvas *render.Canvas
	rng    *vmath.Rand
	epoch  time.Time

	// Per-tick spawn probabilities
	RocketChance float64
	StreakChance float64

	env particle.Env

	statRockets   *atomic.Int64
	statParticles *atomic.Int64
	statStreaks   *atomic.Int64
	statElapsed   *atomic.Int64
	statPhase     *status.AtomicString
}

// NewDriver creates a driver drawing on canvas; epoch is the game time pulse phase is measured from
func NewDriver(choreo *Choreographer, sched *engine.Scheduler, canvas *render.Canvas, rng *vmath.Rand, epoch time.Time, reg *status.Registry) *Driver {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Driver{
		choreo:        choreo,
		sched:         sched,
		canvas:        canvas,
		rng:           rng,
		epoch:         epoch,
		RocketChance:  parameter.DecorativeRocketChance,
		StreakChance:  parameter.StreakChance,
		env:           particle.Env{Rand: rng},
		statRockets:   reg.Ints.Get(status.KeyRockets),
		statParticles: reg.Ints.Get(status.KeyParticles),
		statStreaks:   reg.Ints.Get(status.KeyStreaks),
		statElapsed:   reg.Ints.Get(status.KeyElapsed),
		statPhase:     reg.Strings.Get(status.KeyPhase),
	}
}

// Resize rebuilds the canvas and restarts the show for a width×height surface
func (d *Driver) Resize(width, height int) error {
	d.canvas.Resize(width, height)
	return d.choreo.Start(width, height)
}

// Restart replays the show on the current surface
func (d *Driver) Restart() error {
	d.canvas.Clear()
	w, h := d.canvas.Size()
	return d.choreo.Start(w, h)
}

// Tick fires due timers then advances and draws every entity once
func (d *Driver) Tick(now time.Time) {
	d.sched.Advance(now)

	s := d.choreo.Session()
	l := s.Layout
	d.canvas.Fade(parameter.TrailFadeAlpha)

	ms := float64(now.Sub(d.epoch)) / float64(time.Millisecond)
	d.env.Pulse = vmath.Pulse(ms, parameter.PulseFrequency, parameter.PulseAmplitude)
	d.env.Morphing = s.Morphing
	d.env.HeartCenter = l.HeartCenter
	d.env.Width = l.Width
	d.env.Height = l.Height

	if r := s.MainRocket; r != nil && !r.Exploded {
		if r.Advance(l.Height) {
			d.choreo.OnMainExploded(r.X, r.Y)
		}
		r.Render(d.canvas)
	}

	if d.rng.Chance(d.RocketChance) {
		d.choreo.SpawnDecorative()
	}
	if d.rng.Chance(d.StreakChance) {
		d.choreo.SpawnStreak()
	}

	live := s.Rockets[:0]
	for _, r := range s.Rockets {
		if r.Advance(l.Height) {
			d.choreo.OnDecorativeExploded(r)
			continue
		}
		r.Render(d.canvas)
		live = append(live, r)
	}
	clear(s.Rockets[len(live):])
	s.Rockets = live

	// Morph state may have flipped inside a callback above
	d.env.Morphing = s.Morphing
	s.Particles = d.step(s.Particles)
	s.Streaks = d.step(s.Streaks)

	d.statRockets.Store(int64(len(s.Rockets)))
	d.statParticles.Store(int64(len(s.Particles)))
	d.statStreaks.Store(int64(len(s.Streaks)))
	d.statElapsed.Store(now.Sub(d.epoch).Milliseconds())
	d.statPhase.Set(d.choreo.Phase().String())
}

// step advances, draws and compacts ps in place
func (d *Driver) step(ps []particle.Particle) []particle.Particle {
	live := ps[:0]
	for i := range ps {
		p := &ps[i]
		p.Advance(&d.env)
		p.Render(d.canvas)
		if !p.Done() {
			live = append(live, *p)
		}
	}
	return live
}
