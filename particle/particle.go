// Package particle holds the per-step motion models of text, burst and streak particles and rockets
package particle

import (
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/vmath"
)

// Kind tags the particle variant
type Kind uint8

const (
	KindText Kind = iota
	KindBurst
	KindStreak
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBurst:
		return "burst"
	case KindStreak:
		return "streak"
	default:
		return "unknown"
	}
}

// Env is the per-step context shared by all particles of a frame
type Env struct {
	// Morphing switches heart-targeted text particles onto their heart target
	Morphing bool
	// Pulse is the heartbeat scale applied to heart targets around HeartCenter
	Pulse       float64
	HeartCenter vmath.Point
	Width       float64
	Height      float64
	Rand        *vmath.Rand
}

// Particle is a tagged union over the three variants
// Fields not used by a variant stay zero
type Particle struct {
	Kind Kind

	X, Y   float64
	VX, VY float64
	Color  render.RGB
	Alpha  float64

	// Text
	Target      vmath.Point
	HeartTarget vmath.Point
	HasHeart    bool
	Base        render.RGB
	Size        float64

	// Streak
	Length float64
	Dead   bool
}

// Advance steps the particle once
func (p *Particle) Advance(env *Env) {
	switch p.Kind {
	case KindText:
		p.advanceText(env)
	case KindBurst:
		p.advanceBurst()
	case KindStreak:
		p.advanceStreak(env)
	}
}

// Render draws the particle without changing its state
func (p *Particle) Render(s render.Surface) {
	switch p.Kind {
	case KindText:
		p.renderText(s)
	case KindBurst:
		p.renderBurst(s)
	case KindStreak:
		p.renderStreak(s)
	}
}

// Done reports whether the particle can be removed
// Text particles are never done
func (p *Particle) Done() bool {
	switch p.Kind {
	case KindBurst:
		return p.Alpha <= 0
	case KindStreak:
		return p.Dead
	default:
		return false
	}
}

// Position returns the current position
func (p *Particle) Position() vmath.Point {
	return vmath.Point{X: p.X, Y: p.Y}
}
