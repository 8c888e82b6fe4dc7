package show

import (
	"github.com/lixenwraith/heartburst/particle"
	"github.com/lixenwraith/heartburst/vmath"
)

// Session is the mutable world of one show run
// Owned by the frame loop goroutine
type Session struct {
	Layout Layout

	// Target sets computed at init
	MainText     []vmath.Point
	InnerGlyph   []vmath.Point
	HeartContour []vmath.Point

	MainRocket *particle.Rocket
	Rockets    []*particle.Rocket
	Particles  []particle.Particle
	Streaks    []particle.Particle

	Morphing bool
}

// Reset drops every entity and target and clears the morph switch
func (s *Session) Reset() {
	clear(s.Rockets)
	*s = Session{
		Rockets:   s.Rockets[:0],
		Particles: s.Particles[:0],
		Streaks:   s.Streaks[:0],
	}
}

// Counts returns the number of live rockets, text particles, bursts and streaks
func (s *Session) Counts() (rockets, text, bursts, streaks int) {
	rockets = len(s.Rockets)
	if s.MainRocket != nil && !s.MainRocket.Exploded {
		rockets++
	}
	for i := range s.Particles {
		if s.Particles[i].Kind == particle.KindText {
			text++
		} else {
			bursts++
		}
	}
	return rockets, text, bursts, len(s.Streaks)
}
