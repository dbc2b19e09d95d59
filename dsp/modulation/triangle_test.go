package modulation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fmscope/dsp/core"
)

func TestTriangleRejectsShortPeriod(t *testing.T) {
	for _, period := range []int{-4, 0, 1} {
		if _, err := NewTriangle(5, period); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("NewTriangle(5, %d) error = %v, want ErrConfiguration", period, err)
		}
	}
}

func TestTriangleRejectsNonFiniteDepth(t *testing.T) {
	if _, err := NewTriangle(math.NaN(), 10); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("NewTriangle(NaN, 10) error = %v, want ErrConfiguration", err)
	}
}

func TestTriangleSetParamsKeepsStateOnError(t *testing.T) {
	tri, err := NewTriangle(5, 10)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	if err := tri.SetParams(7, 1); err == nil {
		t.Fatal("expected error for period 1")
	}

	if tri.Depth() != 5 || tri.Period() != 10 || tri.Slope() != 1 {
		t.Fatalf("state changed after failed SetParams: depth=%v period=%d slope=%v",
			tri.Depth(), tri.Period(), tri.Slope())
	}
}

func TestTriangleShape(t *testing.T) {
	tri, err := NewTriangle(5, 2)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	if got := tri.Freq(0); got != 0 {
		t.Fatalf("Freq(0) = %v, want 0", got)
	}

	if got := tri.Freq(1); got != 5 {
		t.Fatalf("Freq(1) = %v, want 5", got)
	}
}

func TestTriangleEvenPeriod(t *testing.T) {
	tri, err := NewTriangle(4, 8)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	want := []float64{0, 1, 2, 3, 4, 3, 2, 1}
	got := make([]float64, len(want))
	tri.Fill(got, 0)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Freq(%d) = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTriangleOddPeriodKeepsUnequalRamps(t *testing.T) {
	// half = 2, slope = 1.5: rising ramp has 2 samples, falling ramp 3.
	tri, err := NewTriangle(3, 5)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	want := []float64{0, 1.5, 3, 1.5, 0}
	for i, w := range want {
		if got := tri.Freq(i); math.Abs(got-w) > 1e-12 {
			t.Fatalf("Freq(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestTrianglePeriodicity(t *testing.T) {
	periods := []int{2, 3, 7, 64, 5000}
	for _, period := range periods {
		tri, err := NewTriangle(5, period)
		if err != nil {
			t.Fatalf("NewTriangle(5, %d) error = %v", period, err)
		}

		if got := tri.Freq(0); got != 0 {
			t.Fatalf("period=%d: Freq(0) = %v, want 0", period, got)
		}

		if got := tri.Freq(period / 2); math.Abs(got-5) > 1e-12 {
			t.Fatalf("period=%d: Freq(period/2) = %v, want 5", period, got)
		}

		for i := 0; i < 3*period; i++ {
			if tri.Freq(i) != tri.Freq(i+period) {
				t.Fatalf("period=%d: Freq(%d) != Freq(%d)", period, i, i+period)
			}
		}
	}
}

func TestTriangleRange(t *testing.T) {
	tri, err := NewTriangle(12.5, 101)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	for i := 0; i < 1000; i++ {
		f := tri.Freq(i)
		if f < -1e-12 || f > 12.5+1e-12 {
			t.Fatalf("Freq(%d) = %v outside [0, 12.5]", i, f)
		}
	}
}

func TestTriangleNegativeIndex(t *testing.T) {
	tri, err := NewTriangle(4, 8)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	if got, want := tri.Freq(-1), tri.Freq(7); got != want {
		t.Fatalf("Freq(-1) = %v, want %v", got, want)
	}
}

func TestTriangleSetParamsRecomputesSlope(t *testing.T) {
	tri, err := NewTriangle(0, 2)
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}

	if got := tri.Freq(1); got != 0 {
		t.Fatalf("Freq(1) = %v, want 0 for zero depth", got)
	}

	if err := tri.SetParams(5, 2); err != nil {
		t.Fatalf("SetParams() error = %v", err)
	}

	if got := tri.Freq(1); got != 5 {
		t.Fatalf("Freq(1) = %v, want 5 after SetParams", got)
	}
}
