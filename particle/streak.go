package particle

import (
	"math"

	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
	"github.com/lixenwraith/heartburst/vmath"
)

// NewStreak creates a shooting star somewhere in the top half of a width×height surface
func NewStreak(width, height float64, rng *vmath.Rand) Particle {
	speed := parameter.StreakMinSpeed + rng.Float64()*parameter.StreakSpeedRange
	return Particle{
		Kind:   KindStreak,
		X:      rng.Float64() * width,
		Y:      rng.Float64() * (height / 2),
		VX:     math.Cos(parameter.StreakAngle) * speed,
		VY:     math.Sin(parameter.StreakAngle) * speed,
		Length: parameter.StreakMinLength + rng.Float64()*parameter.StreakLenRange,
		Color:  render.RGBWhite,
		Alpha:  1,
	}
}

func (p *Particle) advanceStreak(env *Env) {
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= parameter.StreakFade
	if p.Alpha <= 0 || p.X > env.Width || p.Y > env.Height {
		p.Dead = true
	}
}

func (p *Particle) renderStreak(s render.Surface) {
	if p.Alpha <= 0 {
		return
	}
	tailX := p.X - math.Cos(parameter.StreakAngle)*p.Length
	tailY := p.Y - math.Sin(parameter.StreakAngle)*p.Length
	s.StrokeLine(p.X, p.Y, tailX, tailY, parameter.StreakLineWidth, p.Color, p.Alpha)
}
