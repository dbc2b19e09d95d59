package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// TriangleFM generates an unquantized reference for a sine carrier swept by a
// triangular LFO of depthHz over period samples. Phase is accumulated with the
// frequency of the sample just emitted and never wrapped.
func TriangleFM(phase, carrierHz, depthHz float64, period int, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	half := period / 2
	slope := depthHz / float64(half)
	for i := range out {
		local := i % period
		offset := slope * float64(local)
		if local >= half {
			offset = depthHz - slope*float64(local-half)
		}
		out[i] = amplitude * math.Sin(phase)
		phase += 2 * math.Pi * (carrierHz + offset) / sampleRate
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
