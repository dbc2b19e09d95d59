package window

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fmscope/dsp/core"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w, err := Generate(typ, 64)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}

			for i := range w {
				if !almostEqual(w[i], w[len(w)-1-i], 1e-12) {
					t.Fatalf("window not symmetric at %d: %v vs %v", i, w[i], w[len(w)-1-i])
				}
			}
		})
	}
}

func TestGenerateMatchesClosedForm(t *testing.T) {
	const n = 33

	tests := []struct {
		typ Type
		a0  float64
	}{
		{TypeHamming, 0.54},
		{TypeHann, 0.5},
	}

	for _, tt := range tests {
		w, err := Generate(tt.typ, n)
		if err != nil {
			t.Fatalf("Generate(%v) error = %v", tt.typ, err)
		}

		for k := range w {
			want := tt.a0 - (1-tt.a0)*math.Cos(2*math.Pi*float64(k)/float64(n-1))
			if !almostEqual(w[k], want, 1e-12) {
				t.Fatalf("%v[%d] = %v, want %v", tt.typ, k, w[k], want)
			}
		}
	}
}

func TestGenerateEndpoints(t *testing.T) {
	hann, err := Generate(TypeHann, 16)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(hann[0], 0, 1e-12) || !almostEqual(hann[15], 0, 1e-12) {
		t.Fatalf("hann endpoints = %v, %v, want 0", hann[0], hann[15])
	}

	hamming, err := Generate(TypeHamming, 16)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(hamming[0], 0.08, 1e-12) {
		t.Fatalf("hamming[0] = %v, want 0.08", hamming[0])
	}
}

func TestGenerateSingleSample(t *testing.T) {
	w, err := Generate(TypeHamming, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(w) != 1 || !almostEqual(w[0], 0.08, 1e-12) {
		t.Fatalf("Generate(hamming, 1) = %v", w)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	if _, err := Generate(TypeHann, 0); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Generate(size 0) error = %v, want ErrConfiguration", err)
	}

	if _, err := Generate(Type(42), 16); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Generate(unknown) error = %v, want ErrConfiguration", err)
	}
}

func TestApplyInPlaceByType(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	if err := Apply(TypeRectangular, buf); err != nil {
		t.Fatal(err)
	}

	for i, v := range buf {
		if v != float64(i+1) {
			t.Fatalf("rectangular should be passthrough at %d: %v", i, v)
		}
	}

	if err := Apply(TypeHann, buf); err != nil {
		t.Fatal(err)
	}

	if buf[0] != 0 {
		t.Fatalf("hann first sample should be 0, got %v", buf[0])
	}

	if err := Apply(Type(-1), buf); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("Apply(unknown) error = %v, want ErrConfiguration", err)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{"rectangular", TypeRectangular},
		{"Hamming", TypeHamming},
		{" HANN ", TypeHann},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.name)
		if err != nil {
			t.Fatalf("ParseType(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("ParseType(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	for _, bad := range []string{"", "blackman", "hanning"} {
		if _, err := ParseType(bad); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("ParseType(%q) error = %v, want ErrConfiguration", bad, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}

	if Type(9).Valid() {
		t.Fatal("Type(9) should not be valid")
	}
	if Type(9).String() != "window(9)" {
		t.Fatalf("Type(9).String() = %q", Type(9).String())
	}
}

func TestMetadataAndENBW(t *testing.T) {
	for _, typ := range Types() {
		m := Info(typ)

		w, err := Generate(typ, 4096)
		if err != nil {
			t.Fatal(err)
		}

		enbw, err := EquivalentNoiseBandwidth(w)
		if err != nil {
			t.Fatalf("EquivalentNoiseBandwidth error: %v", err)
		}

		if !almostEqual(enbw, m.ENBW, 0.01) {
			t.Fatalf("%s ENBW=%v, want ~%v", m.Name, enbw, m.ENBW)
		}
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	samples := []float64{1, 2, 3}
	if err := ApplyCoefficientsInPlace(samples, []float64{2, 0.5, 0}); err != nil {
		t.Fatal(err)
	}

	want := []float64{2, 1, 0}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("samples[%d] = %v, want %v", i, samples[i], want[i])
		}
	}

	if err := ApplyCoefficientsInPlace(samples, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
