// Package shuffle implements the deterministic team-shuffling core: a
// seeded pseudo-random sequence, the feasibility validator, the
// multi-phase greedy group allocator, the group namer, and the per-group
// constraint evaluator.
//
// Every random decision in one run is drawn from a single shared Sequence
// in a fixed order, so identical population, settings, and seed text
// always reproduce byte-identical output.
package shuffle

// SeedFromText hashes arbitrary seed text to a 32-bit seed.
//
// The hash folds each code point into an FNV-offset accumulator with a
// shift-add mix, performed under 32-bit wraparound. It is deterministic
// and order-sensitive but makes no uniqueness guarantee: distinct texts
// may collide.
func SeedFromText(text string) uint32 {
	h := uint32(2166136261)
	for _, r := range text {
		h ^= uint32(r)
		h += (h << 1) + (h << 4) + (h << 7) + (h << 8) + (h << 24)
	}
	return h
}

// Sequence is a deterministic pseudo-random stream of float64 values in
// [0,1), backed by a single 32-bit state word (mulberry32). The same seed
// and the same call count always reproduce the same outputs; this is the
// backbone of every reproducibility guarantee in the package.
//
// A Sequence is not safe for concurrent use. One allocation run threads a
// single Sequence through all of its phases, and the order of draws across
// phases is part of the observable contract.
type Sequence struct {
	state uint32
}

// NewSequence returns a Sequence starting from the given seed.
func NewSequence(seed uint32) *Sequence {
	return &Sequence{state: seed}
}

// Next advances the state and returns the next value in [0,1).
func (s *Sequence) Next() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Shuffle returns a new slice holding items in Fisher–Yates order,
// consuming one draw per position from the last index down to 1. The
// input is not mutated. Slices of length 0 or 1 consume no draws.
func Shuffle[T any](seq *Sequence, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := int(seq.Next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
