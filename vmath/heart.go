package vmath

import "math"

// Heart returns count points on the parametric heart curve
// x = 16 sin³t, y = -(13 cos t - 5 cos 2t - 2 cos 3t - cos 4t), t = 2π·i/count
// Points are scaled by scale and translated to (cx, cy); count < 1 yields nil
func Heart(count int, cx, cy, scale float64) []Point {
	if count < 1 {
		return nil
	}
	pts := make([]Point, count)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(count)
		s := math.Sin(t)
		x := 16 * s * s * s
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		pts[i] = Point{X: cx + x*scale, Y: cy + y*scale}
	}
	return pts
}

// Pulse returns the heartbeat scale for elapsed milliseconds
// 1 + sin³(freq·ms)·amplitude
func Pulse(ms, freq, amplitude float64) float64 {
	s := math.Sin(ms * freq)
	return 1 + s*s*s*amplitude
}
