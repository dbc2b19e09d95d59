package stft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
)

// minPlanSize is the smallest power-of-two length routed to algo-fft plans.
const minPlanSize = 8

// transform computes the forward DFT of one real frame.
type transform interface {
	// forward returns the full complex spectrum of frame. The returned slice
	// may be reused by the next call.
	forward(frame []float64) ([]complex128, error)
}

func newTransform(size int) (transform, error) {
	if size >= minPlanSize && isPowerOf2(size) {
		plan, err := algofft.NewPlan64(size)
		if err != nil {
			return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
		}

		return &planTransform{
			plan: plan,
			in:   make([]complex128, size),
			out:  make([]complex128, size),
		}, nil
	}

	return dspTransform{}, nil
}

// planTransform runs power-of-two frames through a reusable algo-fft plan.
type planTransform struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

func (p *planTransform) forward(frame []float64) ([]complex128, error) {
	for i, v := range frame {
		p.in[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.out, p.in); err != nil {
		return nil, fmt.Errorf("stft: forward FFT failed: %w", err)
	}

	return p.out, nil
}

// dspTransform handles arbitrary lengths (mixed radix and Bluestein).
type dspTransform struct{}

func (dspTransform) forward(frame []float64) ([]complex128, error) {
	return fft.FFTReal(frame), nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
