package particle

import (
	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/render"
)

// TrailDot is one fading position left behind an ascending rocket
type TrailDot struct {
	X, Y  float64
	Alpha float64
}

// Rocket is a vertically ascending body with a fading trail
// The main rocket carries the message; decorative rockets only burst
type Rocket struct {
	X, Y     float64
	VY       float64
	Color    render.RGB
	Main     bool
	Exploded bool

	trail []TrailDot
}

// NewMainRocket launches the message rocket from the bottom center of the surface
func NewMainRocket(width, height, speed float64) *Rocket {
	return &Rocket{
		X:     width / 2,
		Y:     height,
		VY:    -speed,
		Color: render.RGBWhite,
		Main:  true,
	}
}

// NewDecorativeRocket launches a colored rocket at x with initial velocity vy
func NewDecorativeRocket(x, height, vy float64, c render.RGB) *Rocket {
	return &Rocket{
		X:     x,
		Y:     height,
		VY:    vy,
		Color: c,
	}
}

// Advance steps an ascending rocket and reports whether it exploded on this step
// surfaceHeight bounds the main rocket's altitude trigger
func (r *Rocket) Advance(surfaceHeight float64) bool {
	if r.Exploded {
		return false
	}

	r.Y += r.VY
	r.VY += parameter.RocketGravity

	r.trail = append(r.trail, TrailDot{X: r.X, Y: r.Y, Alpha: 1})
	live := r.trail[:0]
	for _, d := range r.trail {
		d.Alpha -= parameter.RocketTrailFade
		if d.Alpha > 0 {
			live = append(live, d)
		}
	}
	r.trail = live

	if r.Main {
		r.Exploded = r.VY >= 0 || r.Y < surfaceHeight*parameter.RocketMainAltitudeFraction
	} else {
		r.Exploded = r.VY >= parameter.RocketDecorativeApexVelocity
	}
	return r.Exploded
}

// Trail returns the live trail dots, oldest first
func (r *Rocket) Trail() []TrailDot {
	return r.trail
}

// Render draws the body and then the trail; exploded rockets draw nothing
func (r *Rocket) Render(s render.Surface) {
	if r.Exploded {
		return
	}
	s.FillRect(r.X-parameter.RocketBodyWidth/2, r.Y-parameter.RocketBodyOffsetY,
		parameter.RocketBodyWidth, parameter.RocketBodyHeight, r.Color, 1)

	trailColor := r.Color
	if r.Main {
		trailColor = render.RGBWhite
	}
	for _, d := range r.trail {
		s.FillRect(d.X-parameter.RocketTrailSize/2, d.Y, parameter.RocketTrailSize, parameter.RocketTrailSize, trailColor, d.Alpha)
	}
}
