package particle

import (
	"math"

	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/vmath"
)

// NewText creates a text particle at start homing to target with the given initial velocity
// size is the edge of the drawn square
func NewText(start, target vmath.Point, vx, vy float64, base render.RGB, size float64) Particle {
	return Particle{
		Kind:   KindText,
		X:      start.X,
		Y:      start.Y,
		VX:     vx,
		VY:     vy,
		Target: target,
		Base:   base,
		Color:  base,
		Alpha:  1,
		Size:   size,
	}
}

// SetHeartTarget assigns the secondary target followed once morphing starts
func (p *Particle) SetHeartTarget(pt vmath.Point) {
	p.HeartTarget = pt
	p.HasHeart = true
}

// CurrentTarget returns the point the particle homes to under env
func (p *Particle) CurrentTarget(env *Env) vmath.Point {
	if env.Morphing && p.HasHeart {
		return p.HeartTarget.ScaleAbout(env.HeartCenter, env.Pulse)
	}
	return p.Target
}

func (p *Particle) advanceText(env *Env) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= parameter.TextFriction
	p.VY *= parameter.TextFriction

	// Homing is positional and only engages once the particle has slowed down
	if math.Abs(p.VX) < parameter.TextSettleSpeed && math.Abs(p.VY) < parameter.TextSettleSpeed {
		t := p.CurrentTarget(env)
		p.X += (t.X - p.X) * parameter.TextHomingRate
		p.Y += (t.Y - p.Y) * parameter.TextHomingRate
	}

	if env.Rand == nil {
		return
	}
	if env.Rand.Chance(parameter.TextShimmerChance) {
		if env.Rand.Chance(0.5) {
			p.Color = render.RGBWhite
		} else {
			p.Color = render.RGBGold
		}
	} else if env.Rand.Chance(parameter.TextShimmerChance) {
		p.Color = p.Base
	}
}

func (p *Particle) renderText(s render.Surface) {
	size := p.Size
	if size <= 0 {
		size = parameter.ParticleSizeDesktop
	}
	s.FillRect(p.X, p.Y, size, size, p.Color, 1)
}
