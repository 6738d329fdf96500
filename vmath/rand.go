package vmath

import (
	"math"
)

// FastRand is a xorshift64 generator
// Seeded, reproducible, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns [lo,hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// UnitSphere samples a direction uniformly on the unit sphere
// z uniform in [-1,1] with uniform azimuth (Archimedes)
func (r *FastRand) UnitSphere() Vec3 {
	z := 2*r.Float64() - 1
	phi := 2 * math.Pi * r.Float64()
	s := math.Sqrt(1 - z*z)
	sinPhi, cosPhi := math.Sincos(phi)
	return Vec3{s * cosPhi, s * sinPhi, z}
}
