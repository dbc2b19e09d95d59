package stft

import (
	"sync"

	"github.com/cwbudde/algo-fmscope/dsp/core"
	"github.com/cwbudde/algo-fmscope/dsp/spectrum"
	"github.com/cwbudde/algo-fmscope/dsp/window"
)

// Spectrogram is a complex STFT result laid out as rows of frequency bins and
// columns of time frames.
type Spectrogram struct {
	// Bins[row][frame] holds the unnormalized DFT value. When Flipped is set,
	// row 0 is the highest bin and the last row is DC.
	Bins [][]complex128
	// Size is the frame length the spectrogram was computed with.
	Size int
	// Hop is the frame advance in samples.
	Hop int
	// Flipped reports whether rows are in descending frequency order.
	Flipped bool

	frames int
}

// framePool recycles windowed frame buffers across Compute calls.
var framePool = sync.Pool{
	New: func() any { return new([]float64) },
}

// Compute returns the spectrogram of data with rows in descending frequency
// order, ready to be drawn top to bottom.
func Compute(data []float64, cfg Config) (*Spectrogram, error) {
	s, err := ComputeOriented(data, cfg)
	if err != nil {
		return nil, err
	}

	s.Flip()

	return s, nil
}

// ComputeOriented returns the spectrogram of data with row 0 at DC.
func ComputeOriented(data []float64, cfg Config) (*Spectrogram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := window.Generate(cfg.Window, cfg.Size)
	if err != nil {
		return nil, err
	}

	tr, err := newTransform(cfg.Size)
	if err != nil {
		return nil, err
	}

	hop := cfg.Hop()
	nBins := cfg.Bins()
	nFrames := FrameCount(len(data), cfg)

	rows := make([][]complex128, nBins)
	for k := range rows {
		rows[k] = make([]complex128, nFrames)
	}

	buf := framePool.Get().(*[]float64)
	defer framePool.Put(buf)

	*buf = core.EnsureLen(*buf, cfg.Size)
	frame := *buf

	for col, pos := 0, 0; pos < len(data); col, pos = col+1, pos+hop {
		core.FillFrame(frame, data[pos:])

		if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
			return nil, err
		}

		bins, err := tr.forward(frame)
		if err != nil {
			return nil, err
		}

		for k := 0; k < nBins; k++ {
			rows[k][col] = bins[k]
		}
	}

	return &Spectrogram{
		Bins:   rows,
		Size:   cfg.Size,
		Hop:    hop,
		frames: nFrames,
	}, nil
}

// Flip reverses the row order and toggles Flipped.
func (s *Spectrogram) Flip() {
	for i, j := 0, len(s.Bins)-1; i < j; i, j = i+1, j-1 {
		s.Bins[i], s.Bins[j] = s.Bins[j], s.Bins[i]
	}

	s.Flipped = !s.Flipped
}

// Frames returns the number of time frames (columns).
func (s *Spectrogram) Frames() int { return s.frames }

// NumBins returns the number of frequency bins (rows).
func (s *Spectrogram) NumBins() int { return len(s.Bins) }

// Magnitude returns |X| for every cell, keeping the row orientation.
func (s *Spectrogram) Magnitude() [][]float64 {
	return spectrum.MagnitudeMatrix(s.Bins)
}

// Power returns |X|^2 for every cell, keeping the row orientation.
func (s *Spectrogram) Power() [][]float64 {
	return spectrum.PowerMatrix(s.Bins)
}

// Phase returns arg(X) for every cell, keeping the row orientation.
func (s *Spectrogram) Phase() [][]float64 {
	return spectrum.PhaseMatrix(s.Bins)
}

// MagnitudeFrames returns |X| laid out as frames x bins with bin 0 at DC,
// whatever the row orientation.
func (s *Spectrogram) MagnitudeFrames() [][]float64 {
	out := make([][]float64, s.frames)
	for f := range out {
		col := s.Column(f)
		if s.Flipped {
			for i, j := 0, len(col)-1; i < j; i, j = i+1, j-1 {
				col[i], col[j] = col[j], col[i]
			}
		}

		out[f] = spectrum.Magnitude(col)
	}

	return out
}

// Column returns the bins of one time frame in row order.
func (s *Spectrogram) Column(frame int) []complex128 {
	out := make([]complex128, len(s.Bins))
	for k, row := range s.Bins {
		out[k] = row[frame]
	}

	return out
}

// BinIndex maps a row to its DFT bin index, honouring Flipped.
func (s *Spectrogram) BinIndex(row int) int {
	if s.Flipped {
		return len(s.Bins) - 1 - row
	}

	return row
}

// BinHz returns the frequency spacing between bins.
func (s *Spectrogram) BinHz(sampleRate float64) float64 {
	return sampleRate / float64(s.Size)
}

// RowHz returns the centre frequency of a row in Hz.
func (s *Spectrogram) RowHz(row int, sampleRate float64) float64 {
	return float64(s.BinIndex(row)) * s.BinHz(sampleRate)
}

// FrameStart returns the index of the first input sample of a frame.
func (s *Spectrogram) FrameStart(frame int) int {
	return frame * s.Hop
}
