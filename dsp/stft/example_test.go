package stft_test

import (
	"fmt"

	"github.com/cwbudde/algo-fmscope/dsp/stft"
)

func ExampleCompute() {
	cfg, err := stft.NewConfig("rectangular", 8, 0.5)
	if err != nil {
		panic(err)
	}

	data := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	s, err := stft.Compute(data, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Frames(), s.NumBins())

	// The last row is DC.
	mag := s.Magnitude()
	dc := mag[s.NumBins()-1]
	fmt.Printf("%.0f %.0f %.0f\n", dc[0], dc[1], dc[2])

	// Output:
	// 3 4
	// 8 6 2
}
