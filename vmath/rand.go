package vmath

import "math"

// Rand is a xorshift64 generator
// Sessions own one instance so runs are reproducible from a seed
type Rand struct {
	state uint64
}

// NewRand returns a generator, a zero seed is replaced by 1
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a value in [0, n), 0 when n <= 0
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Polar returns a velocity of the given speed in a uniformly random direction
func (r *Rand) Polar(speed float64) (vx, vy float64) {
	angle := r.Float64() * 2 * math.Pi
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
