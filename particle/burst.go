package particle

import (
	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/vmath"
)

// NewBurst creates a fading spark at (x, y) moving at a random speed in [0, BurstMaxSpeed)
func NewBurst(x, y float64, c render.RGB, rng *vmath.Rand) Particle {
	vx, vy := rng.Polar(rng.Float64() * parameter.BurstMaxSpeed)
	return Particle{
		Kind:  KindBurst,
		X:     x,
		Y:     y,
		VX:    vx,
		VY:    vy,
		Color: c,
		Alpha: 1,
	}
}

func (p *Particle) advanceBurst() {
	p.VX *= parameter.BurstFriction
	p.VY *= parameter.BurstFriction
	p.VY += parameter.BurstGravity
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= parameter.BurstFade
}

func (p *Particle) renderBurst(s render.Surface) {
	if p.Alpha <= 0 {
		return
	}
	s.FillRect(p.X, p.Y, parameter.BurstSize, parameter.BurstSize, p.Color, p.Alpha)
}
