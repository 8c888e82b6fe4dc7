// Package vmath holds the float geometry shared by the sampler, the particles and the choreography
package vmath

import "math"

// Point is a screen coordinate in canvas pixels
type Point struct {
	X, Y float64
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ScaleAbout returns p moved radially from center by factor
func (p Point) ScaleAbout(center Point, factor float64) Point {
	return Point{
		X: center.X + (p.X-center.X)*factor,
		Y: center.Y + (p.Y-center.Y)*factor,
	}
}

// Bounds returns the axis-aligned bounding box of pts, ok is false for an empty set
func Bounds(pts []Point) (lo, hi Point, ok bool) {
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}
