package generation

import "math"

// RNG is a seeded random number generator (Mulberry32). The whole
// generation pipeline draws from one instance, so the order of draws is
// part of the output contract: adding, removing, or reordering a draw
// changes every world built after that point in the sequence.
type RNG struct {
	state uint32
}

// NewRNG creates a new RNG with the given seed
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// NewStringRNG creates a new RNG seeded from a hashed string
func NewStringRNG(seed string) *RNG {
	return NewRNG(HashSeed(seed))
}

// HashSeed folds a string seed to a 32-bit value (FNV-1a)
func HashSeed(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Next advances the state once and returns a value in [0, 1)
func (r *RNG) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Float returns a value in [min, max). Consumes one draw.
func (r *RNG) Float(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// Int returns a value in [min, max], inclusive on both ends. Consumes
// exactly one draw; callers guarantee min <= max.
func (r *RNG) Int(min, max int) int {
	return min + int(math.Floor(r.Next()*float64(max-min+1)))
}

// Pick returns a random element from a slice. Consumes one draw even for
// single-element slices; returns "" without drawing when the slice is empty.
func (r *RNG) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[int(r.Next()*float64(len(items)))]
}
