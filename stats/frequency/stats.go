// Package frequency derives frequency-domain statistics from STFT frames.
//
// Inputs are one-sided magnitude spectra with bin 0 at DC and a constant bin
// spacing binHz, so bin i sits at i*binHz. Track applies the statistics to
// every frame of a spectrogram, which is how an FM sweep's instantaneous
// frequency is recovered from the analysis.
package frequency

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds frequency-domain statistics computed from a magnitude spectrum.
type Stats struct {
	BinCount int
	Max      float64
	MaxBin   int
	PeakHz   float64 // frequency of MaxBin
	Sum      float64 // sum of magnitudes
	Energy   float64 // sum of squared magnitudes
	// Spectral shape descriptors
	Centroid  float64 // spectral centroid (Hz)
	Spread    float64 // spectral spread (Hz)
	Bandwidth float64 // 3 dB bandwidth around peak (Hz)
}

// Calculate computes all statistics for one magnitude spectrum (linear scale,
// NOT dB).
func Calculate(magnitude []float64, binHz float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.Max = magnitude[0]

	s.Sum = vecmath.Sum(magnitude)
	s.Energy = vecmath.DotProduct(magnitude, magnitude)

	for i, v := range magnitude {
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
	}

	s.PeakHz = float64(s.MaxBin) * binHz
	s.Centroid = centroid(magnitude, binHz, s.Sum)
	s.Spread = spread(magnitude, binHz, s.Centroid, s.Sum)
	s.Bandwidth = bandwidth(magnitude, binHz, s.MaxBin, s.Max)

	return s
}

// Track computes Stats for every frame. frames[f] is the DC-first magnitude
// spectrum of frame f.
func Track(frames [][]float64, binHz float64) []Stats {
	out := make([]Stats, len(frames))
	for i, frame := range frames {
		out[i] = Calculate(frame, binHz)
	}
	return out
}

// PeakTrack returns the peak frequency of every frame in Hz.
func PeakTrack(frames [][]float64, binHz float64) []float64 {
	out := make([]float64, len(frames))
	for i, s := range Track(frames, binHz) {
		out[i] = s.PeakHz
	}
	return out
}

// Centroid returns the spectral centroid in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(magnitude []float64, binHz float64) float64 {
	return centroid(magnitude, binHz, vecmath.Sum(magnitude))
}

func centroid(magnitude []float64, binHz float64, sumMag float64) float64 {
	if len(magnitude) == 0 || sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range magnitude {
		weightedSum += float64(i) * binHz * v
	}
	return weightedSum / sumMag
}

// spread computes the standard deviation of the spectrum around the centroid.
func spread(magnitude []float64, binHz float64, cent float64, sumMag float64) float64 {
	if len(magnitude) < 2 || sumMag == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := float64(i)*binHz - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sumMag)
}

// bandwidth returns the 3 dB bandwidth around the peak in Hz. The -3 dB
// points are interpolated linearly between bins; a side that never drops
// below the threshold extends to the edge of the spectrum.
func bandwidth(magnitude []float64, binHz float64, peakBin int, peakVal float64) float64 {
	n := len(magnitude)
	if n < 2 || peakVal == 0 {
		return 0
	}

	threshold := peakVal / math.Sqrt2

	lower := 0.0
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = interpBin(i-1, magnitude[i-1], magnitude[i], threshold)
			break
		}
	}

	upper := float64(n - 1)
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = interpBin(i, magnitude[i], magnitude[i+1], threshold)
			break
		}
	}

	if upper < lower {
		return 0
	}
	return (upper - lower) * binHz
}

// interpBin returns the fractional bin position between lo and lo+1 where the
// magnitude crosses threshold.
func interpBin(lo int, magLow, magHigh, threshold float64) float64 {
	denom := magHigh - magLow
	if denom == 0 {
		return float64(lo) + 0.5
	}
	return float64(lo) + (threshold-magLow)/denom
}
