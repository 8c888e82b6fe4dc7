package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString is a string behind atomic.Value; the zero value reads ""
type AtomicString struct {
	v atomic.Value
}

func (s *AtomicString) Set(val string) {
	s.v.Store(val)
}

func (s *AtomicString) Get() string {
	if v, ok := s.v.Load().(string); ok {
		return v
	}
	return ""
}
