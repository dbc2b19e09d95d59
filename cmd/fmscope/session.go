package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-fmscope/dsp/signal"
	"github.com/cwbudde/algo-fmscope/dsp/stft"
	"github.com/cwbudde/algo-fmscope/dsp/window"
	"github.com/cwbudde/algo-fmscope/stats/frequency"
)

// history accumulates everything generated in one session. The generator
// itself does not keep old samples.
type history struct {
	samples []signal.Sample
	freqs   []float64
}

func generateSession(gen *signal.FMGenerator, count, steps int) (history, error) {
	var h history

	for range steps {
		freqs := gen.FrequencyTrace(count)

		samples, err := gen.Generate(count)
		if err != nil {
			return history{}, err
		}

		h.samples = append(h.samples, samples...)
		h.freqs = append(h.freqs, freqs...)
	}

	return h, nil
}

func writeSamples(w io.Writer, h history, limit int) error {
	if limit > len(h.samples) {
		limit = len(h.samples)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "n\tAmplitude\tFrequency [Hz]\n"); err != nil {
		return fmt.Errorf("failed to write sample header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "-\t---------\t--------------\n"); err != nil {
		return fmt.Errorf("failed to write sample header: %w", err)
	}

	for i := 0; i < limit; i++ {
		s := h.samples[i]
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.4f\n", s.Index, s.Amplitude, h.freqs[i]); err != nil {
			return fmt.Errorf("failed to write sample row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sample table: %w", err)
	}

	_, err := fmt.Fprintln(w)

	return err
}

func writeSummary(w io.Writer, gen *signal.FMGenerator, cfg stft.Config, sg *stft.Spectrogram, total int) error {
	info := window.Info(cfg.Window)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		key string
		val string
	}{
		{"Samples", fmt.Sprintf("%d (next index %d)", total, gen.LastIndex())},
		{"Sample rate", fmt.Sprintf("%g Hz", gen.SampleRate())},
		{"Quantizer", fmt.Sprintf("%d levels, peak %d", gen.Levels(), gen.AmplitudeScale())},
		{"Phase", fmt.Sprintf("%.6f rad", gen.Phase())},
		{"Window", fmt.Sprintf("%s, %d samples, hop %d (ENBW %s)", info.Name, cfg.Size, cfg.Hop(), enbwLabel(cfg))},
		{"Spectrogram", fmt.Sprintf("%d bins x %d frames, %.4f Hz/bin", sg.NumBins(), sg.Frames(), sg.BinHz(gen.SampleRate()))},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r.key, r.val); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary: %w", err)
	}

	_, err := fmt.Fprintln(w)

	return err
}

// enbwLabel measures the equivalent noise bandwidth of the coefficients the
// spectrogram actually used, which drifts from the asymptotic table value for
// short windows. Windows with zero coherent gain (Hann of size 1 or 2) have
// none.
func enbwLabel(cfg stft.Config) string {
	coeffs, err := window.Generate(cfg.Window, cfg.Size)
	if err != nil {
		return "n/a"
	}

	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return "n/a"
	}

	return fmt.Sprintf("%.4f bins", enbw)
}

// writeTrack prints the measured peak and centroid of n evenly spaced frames
// next to the modulator's frequency at the frame centre.
func writeTrack(w io.Writer, h history, sg *stft.Spectrogram, sampleRate float64, n int) error {
	frames := sg.MagnitudeFrames()
	if len(frames) == 0 {
		return nil
	}

	if n > len(frames) {
		n = len(frames)
	}

	binHz := sg.BinHz(sampleRate)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frame\tCentre\tExpected [Hz]\tPeak [Hz]\tCentroid [Hz]\n"); err != nil {
		return fmt.Errorf("failed to write track header: %w", err)
	}

	for i := range n {
		f := i * (len(frames) - 1) / max(n-1, 1)
		st := frequency.Calculate(frames[f], binHz)

		centre := sg.FrameStart(f) + sg.Size/2
		expected := "-"
		if centre < len(h.freqs) {
			expected = fmt.Sprintf("%.4f", h.freqs[centre])
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%s\t%.4f\t%.4f\n", f, centre, expected, st.PeakHz, st.Centroid); err != nil {
			return fmt.Errorf("failed to write track row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush track table: %w", err)
	}

	_, err := fmt.Fprintln(w)

	return err
}
