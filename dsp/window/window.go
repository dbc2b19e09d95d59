package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-fmscope/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHamming
	TypeHann
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

var (
	hammingCoeffs = []float64{0.54, -0.46}
	hannCoeffs    = []float64{0.5, -0.5}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
	TypeHamming:     {Name: "Hamming", ENBW: 1.3628, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeHann:        {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
}

var typeByName = map[string]Type{
	"rectangular": TypeRectangular,
	"hamming":     TypeHamming,
	"hann":        TypeHann,
}

// Types returns all supported window types in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHamming, TypeHann}
}

// ParseType resolves a window name such as "hamming" (case-insensitive).
func ParseType(name string) (Type, error) {
	t, ok := typeByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown window type %q: %w", name, core.ErrConfiguration)
	}

	return t, nil
}

// Valid reports whether t is one of the supported window types.
func (t Type) Valid() bool {
	_, ok := metadataByType[t]
	return ok
}

// String returns the lower-case window name accepted by ParseType.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return strings.ToLower(m.Name)
	}

	return fmt.Sprintf("window(%d)", int(t))
}

// Generate returns symmetric window coefficients of the given length,
// evaluated at x = n/(length-1). A single-sample window is evaluated at x = 0.
func Generate(t Type, length int) ([]float64, error) {
	if err := validateType(t); err != nil {
		return nil, err
	}

	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length))
	}

	return out, nil
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64) error {
	if err := validateType(t); err != nil {
		return err
	}

	if len(buf) == 0 || t == TypeRectangular {
		return nil
	}

	coeffs, err := Generate(t, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}
