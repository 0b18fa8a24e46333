// Package generator produces deterministic daily horoscope content.
// For a fixed (sign, calendar date) pair the output is byte-for-byte
// identical across invocations and process restarts.
package generator

// LCG parameters. These match the long-deployed client generator, so the
// values are load-bearing: changing them changes every published reading.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededSequence is a small linear congruential generator.
// Each Next call both advances and reads the single integer register,
// so the order of calls is part of the generation contract.
type SeededSequence struct {
	seed int64
}

// NewSeededSequence returns a sequence positioned at the given seed.
func NewSeededSequence(seed int64) *SeededSequence {
	return &SeededSequence{seed: seed}
}

// Next advances the register and returns a value in [0, 1).
func (s *SeededSequence) Next() float64 {
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.seed) / lcgModulus
}

// Pick draws the next value and maps it to an index in [0, n).
// n must be positive.
func (s *SeededSequence) Pick(n int) int {
	return int(s.Next() * float64(n))
}

// IntIn draws the next value and maps it to an integer in [lo, lo+span).
func (s *SeededSequence) IntIn(lo, span int) int {
	return int(s.Next()*float64(span)) + lo
}
