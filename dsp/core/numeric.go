package core

import "math"

// TwoPi is one full oscillator cycle in radians.
const TwoPi = 2 * math.Pi

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// RoundHalfAwayFromZero rounds x to the nearest integer, sending ties away
// from zero: 2.5 becomes 3 and -2.5 becomes -3.
//
// The result is computed as floor(x+0.5) for positive x and ceil(x-0.5)
// otherwise, which is not always identical to math.Round near ties.
func RoundHalfAwayFromZero(x float64) int {
	if x > 0 {
		return int(math.Floor(x + 0.5))
	}

	return int(math.Ceil(x - 0.5))
}

// WrapPhase maps phase into [0, 2π). Values already in range are returned
// unchanged. Non-finite input is returned as NaN.
func WrapPhase(phase float64) float64 {
	if phase >= 0 && phase < TwoPi {
		return phase
	}

	p := math.Mod(phase, TwoPi)
	if p < 0 {
		p += TwoPi
	}

	// p+2π can round up to exactly 2π for tiny negative p.
	if p >= TwoPi {
		p -= TwoPi
	}

	return p
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
