package sketch

import "math"

// RNG is a Mulberry32 pseudo-random stream: a single 32-bit state advanced
// by a fixed odd increment with two mixing rounds per draw. Not
// cryptographic; its contract is that one seed plus one call sequence yields
// a bit-identical value sequence on every platform and every run.
type RNG struct {
	state uint32
}

// NewRNG seeds a stream. The same seed always produces the same stream.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Float64 returns the next value, uniform over [0,1).
func (r *RNG) Float64() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// Range returns a uniform float in [min,max).
func (r *RNG) Range(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}

// Int returns a uniform integer in [min,max] inclusive.
func (r *RNG) Int(min, max int) int {
	return int(math.Floor(r.Range(float64(min), float64(max)+1)))
}
