package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/cwbudde/algo-fmscope/dsp/core"
)

const (
	colourLevels = 64
	plainShades  = " .:-=+*#%@"
	cellGlyph    = "█"
)

// inferno approximates matplotlib's inferno colour map.
var inferno = []colorful.Color{
	{R: 0.000, G: 0.000, B: 0.016},
	{R: 0.259, G: 0.039, B: 0.408},
	{R: 0.576, G: 0.149, B: 0.404},
	{R: 0.867, G: 0.318, B: 0.227},
	{R: 0.988, G: 0.647, B: 0.039},
	{R: 0.988, G: 1.000, B: 0.643},
}

type heatMap struct {
	rows    int
	cols    int
	floorDB float64
	plain   bool
}

// render draws mag (rows in descending frequency order) as a character grid
// with frequency and time axis labels.
func (h heatMap) render(w io.Writer, mag [][]float64, sampleRate float64, total int) error {
	if len(mag) == 0 || len(mag[0]) == 0 {
		_, err := fmt.Fprintln(w, "(empty spectrogram)")
		return err
	}

	levels := normalizeDB(downsample(mag, h.rows, h.cols), h.floorDB)

	var cells []string
	if !h.plain {
		cells = colourCells()
	}

	topLabel := fmt.Sprintf("%.2f Hz", sampleRate/2)
	bottomLabel := "0 Hz"
	width := max(len(topLabel), len(bottomLabel))

	var b strings.Builder
	for r, row := range levels {
		label := ""
		switch r {
		case 0:
			label = topLabel
		case len(levels) - 1:
			label = bottomLabel
		}

		fmt.Fprintf(&b, "%*s |", width, label)

		for _, v := range row {
			if h.plain {
				b.WriteByte(plainShades[int(v*float64(len(plainShades)-1)+0.5)])
				continue
			}

			b.WriteString(cells[int(v*float64(colourLevels-1)+0.5)])
		}

		b.WriteByte('\n')
	}

	cols := len(levels[0])
	right := fmt.Sprintf("%d", total)
	gap := max(1, cols-1-len(right))
	fmt.Fprintf(&b, "%*s +%s\n", width, "", strings.Repeat("-", cols))
	fmt.Fprintf(&b, "%*s  0%s%s  (samples)\n", width, "", strings.Repeat(" ", gap), right)

	_, err := io.WriteString(w, b.String())

	return err
}

// downsample reduces mag to at most rows x cols cells, keeping the maximum of
// each block so narrow spectral lines stay visible.
func downsample(mag [][]float64, rows, cols int) [][]float64 {
	inRows, inCols := len(mag), len(mag[0])
	outRows, outCols := min(rows, inRows), min(cols, inCols)

	out := make([][]float64, outRows)
	for r := range out {
		out[r] = make([]float64, outCols)
		r0, r1 := r*inRows/outRows, (r+1)*inRows/outRows

		for c := range out[r] {
			c0, c1 := c*inCols/outCols, (c+1)*inCols/outCols

			peak := 0.0
			for i := r0; i < r1; i++ {
				for j := c0; j < c1; j++ {
					peak = math.Max(peak, mag[i][j])
				}
			}

			out[r][c] = peak
		}
	}

	return out
}

// normalizeDB maps magnitudes to [0, 1] on a dB scale, 1 at the peak and 0 at
// floorDB below it. An all-zero input maps to 0 everywhere.
func normalizeDB(grid [][]float64, floorDB float64) [][]float64 {
	peak := 0.0
	for _, row := range grid {
		for _, v := range row {
			peak = math.Max(peak, v)
		}
	}

	out := make([][]float64, len(grid))
	for r, row := range grid {
		out[r] = make([]float64, len(row))
		if peak == 0 {
			continue
		}

		for c, v := range row {
			rel := core.LinearToDB(v / peak)
			out[r][c] = core.Clamp(1-rel/floorDB, 0, 1)
		}
	}

	return out
}

// colourAt interpolates the colour map in Lab space at t in [0, 1].
func colourAt(t float64) colorful.Color {
	t = core.Clamp(t, 0, 1)
	pos := t * float64(len(inferno)-1)

	i := int(pos)
	if i >= len(inferno)-1 {
		return inferno[len(inferno)-1]
	}

	return inferno[i].BlendLab(inferno[i+1], pos-float64(i)).Clamped()
}

func colourCells() []string {
	cells := make([]string, colourLevels)
	for i := range cells {
		c := colourAt(float64(i) / float64(colourLevels-1))
		cells[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(cellGlyph)
	}

	return cells
}
