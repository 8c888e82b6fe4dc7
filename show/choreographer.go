// Package show sequences the fireworks: the message rocket, the text formation,
// the heart morph and the closing lines
package show

import (
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/lixenwraith/heartburst/audio"
	"github.com/lixenwraith/heartburst/engine"
	"github.com/lixenwraith/heartburst/glyph"
	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/particle"
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/vmath"
)

// ErrNoTargets is returned by Start when the message yields no heart contour on the surface
var ErrNoTargets = errors.New("show: message produced no targets")

// Phase is the choreography stage; phases only move forward within a session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInit
	PhaseLaunch
	PhaseFormation
	PhaseHeart
	PhaseFinale
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInit:
		return "init"
	case PhaseLaunch:
		return "launch"
	case PhaseFormation:
		return "formation"
	case PhaseHeart:
		return "heart"
	case PhaseFinale:
		return "finale"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Script is the content of a show
type Script struct {
	Message    string
	Initial    string
	FinalLines [2]string
	// Palette colors decorative rockets and the text particles before formation
	Palette []render.RGB
	// Glow tints the inner glyph and the closing lines; Heart tints the contour
	Glow  []render.RGB
	Heart []render.RGB
}

// Choreographer drives a Session through its phases
// Every delayed transition is a one-shot timer on the scheduler
type Choreographer struct {
	script  Script
	sampler *glyph.Sampler
	sched   *engine.Scheduler
	rng     *vmath.Rand
	player  audio.Player

	session Session
	phase   Phase
}

// NewChoreographer wires a choreographer; player may be nil for silence
func NewChoreographer(script Script, sampler *glyph.Sampler, sched *engine.Scheduler, rng *vmath.Rand, player audio.Player) *Choreographer {
	if player == nil {
		player = &audio.Nop{}
	}
	if len(script.Palette) == 0 {
		script.Palette = []render.RGB{render.RGBWhite}
	}
	if len(script.Glow) == 0 {
		script.Glow = []render.RGB{render.RGBWhite, render.RGBGold}
	}
	if len(script.Heart) == 0 {
		script.Heart = script.Palette
	}
	return &Choreographer{
		script:  script,
		sampler: sampler,
		sched:   sched,
		rng:     rng,
		player:  player,
	}
}

// Session exposes the live world to the frame driver
func (c *Choreographer) Session() *Session {
	return &c.session
}

// Phase returns the current phase
func (c *Choreographer) Phase() Phase {
	return c.phase
}

// Script returns the show content
func (c *Choreographer) Script() Script {
	return c.script
}

func (c *Choreographer) enter(p Phase) {
	log.Printf("show: phase %s -> %s", c.phase, p)
	c.phase = p
}

// Start resets the session for a width×height surface and schedules the launch
// Pending timers of a previous session are cancelled
func (c *Choreographer) Start(width, height int) error {
	c.sched.Reset()
	c.session.Reset()
	c.phase = PhaseIdle

	l := ComputeLayout(width, height, utf8.RuneCountInString(c.script.Message))
	c.session.Layout = l
	c.sampler.Resize(width, height)

	c.session.MainText = c.sampler.Sample(c.script.Message, l.MainAnchor, l.MainFont, parameter.MaxWidthFraction, l.Stride)
	c.session.InnerGlyph = c.sampler.Sample(c.script.Initial, l.HeartCenter.Y, l.GlyphFont, parameter.MaxWidthFraction, parameter.StrideGlyph)
	c.session.HeartContour = vmath.Heart(HeartCount(len(c.session.MainText)), l.HeartCenter.X, l.HeartCenter.Y, l.HeartScale)

	if len(c.session.HeartContour) == 0 {
		log.Printf("show: %dx%d surface: %d text points, no heart contour", width, height, len(c.session.MainText))
		return fmt.Errorf("%w: %dx%d surface, %d text points", ErrNoTargets, width, height, len(c.session.MainText))
	}

	log.Printf("show: start %dx%d mobile=%v font=%.1f text=%d glyph=%d contour=%d",
		width, height, l.Mobile, l.MainFont, len(c.session.MainText), len(c.session.InnerGlyph), len(c.session.HeartContour))
	c.enter(PhaseInit)
	c.sched.After(parameter.LaunchDelay, c.launch)
	return nil
}

func (c *Choreographer) launch() {
	l := c.session.Layout
	c.session.MainRocket = particle.NewMainRocket(l.Width, l.Height, l.RocketSpeed)
	c.enter(PhaseLaunch)
	c.player.Play(audio.CueLaunch)
}

// OnMainExploded forms the message at the explosion point and schedules the heart morph
func (c *Choreographer) OnMainExploded(x, y float64) {
	if c.phase != PhaseLaunch {
		return
	}
	s := &c.session
	origin := vmath.Point{X: x, Y: y}
	inner := len(s.InnerGlyph)

	for i, target := range s.MainText {
		vx, vy := c.rng.Polar(c.rng.Float64() * parameter.TextExplosionForce)
		p := particle.NewText(origin, target, vx, vy, c.pick(c.script.Palette), s.Layout.ParticleSize)

		var heart vmath.Point
		switch {
		case i < inner:
			heart = s.InnerGlyph[i]
			p.Base = c.pick(c.script.Glow)
		case inner > 0:
			heart = s.HeartContour[(i-inner)%len(s.HeartContour)]
			p.Base = c.pick(c.script.Heart)
		default:
			heart = s.HeartContour[i%len(s.HeartContour)]
			p.Base = c.pick(c.script.Heart)
		}
		p.Color = p.Base
		p.SetHeartTarget(heart)
		s.Particles = append(s.Particles, p)
	}

	c.enter(PhaseFormation)
	c.player.Play(audio.CueExplosion)
	c.sched.After(parameter.MorphDelay, c.morph)
}

func (c *Choreographer) morph() {
	s := &c.session
	s.Morphing = true
	for i := range s.Particles {
		p := &s.Particles[i]
		if p.Kind != particle.KindText {
			continue
		}
		p.VX = c.rng.Range(-parameter.TextReleaseVelocity, parameter.TextReleaseVelocity)
		p.VY = c.rng.Range(-parameter.TextReleaseVelocity, parameter.TextReleaseVelocity)
	}
	c.enter(PhaseHeart)
	c.heartbeat()
	c.sched.After(parameter.FinaleDelay, c.finale)
}

// heartbeat plays one beat and re-arms itself for the rest of the session
func (c *Choreographer) heartbeat() {
	c.player.Play(audio.CueHeartbeat)
	c.sched.After(parameter.HeartbeatInterval, c.heartbeat)
}

func (c *Choreographer) finale() {
	s := &c.session
	l := s.Layout
	origin := l.HeartCenter

	for i, line := range c.script.FinalLines {
		for _, target := range c.sampler.Sample(line, l.FinalAnchors[i], l.FinalFont, parameter.MaxWidthFraction, l.Stride) {
			speed := parameter.FinalMinSpeed + c.rng.Float64()*parameter.FinalSpeedRange
			vx, vy := c.rng.Polar(speed)
			s.Particles = append(s.Particles, particle.NewText(origin, target, vx, vy, c.pick(c.script.Glow), l.ParticleSize))
		}
	}
	c.enter(PhaseFinale)
	c.player.Play(audio.CueFinale)
}

// OnDecorativeExploded scatters bursts in the rocket's color
func (c *Choreographer) OnDecorativeExploded(r *particle.Rocket) {
	for range parameter.BurstCount {
		c.session.Particles = append(c.session.Particles, particle.NewBurst(r.X, r.Y, r.Color, c.rng))
	}
}

// SpawnDecorative launches a decorative rocket at a random x with a random palette color
func (c *Choreographer) SpawnDecorative() {
	l := c.session.Layout
	speed := l.RocketSpeed
	vy := -(c.rng.Float64()*speed/2 + speed/2)
	c.session.Rockets = append(c.session.Rockets,
		particle.NewDecorativeRocket(c.rng.Float64()*l.Width, l.Height, vy, c.pick(c.script.Palette)))
}

// SpawnStreak adds a shooting star
func (c *Choreographer) SpawnStreak() {
	l := c.session.Layout
	c.session.Streaks = append(c.session.Streaks, particle.NewStreak(l.Width, l.Height, c.rng))
}

func (c *Choreographer) pick(colors []render.RGB) render.RGB {
	return colors[c.rng.Intn(len(colors))]
}
