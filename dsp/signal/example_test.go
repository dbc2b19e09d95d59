package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-fmscope/dsp/core"
	"github.com/cwbudde/algo-fmscope/dsp/signal"
)

func ExampleFMGenerator_Generate() {
	g, err := signal.NewFMGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(100)},
		signal.WithPhase(0),
		signal.WithCarrierHz(25),
		signal.WithBitDepth(5),
		signal.WithFMDepth(0),
	)
	if err != nil {
		panic(err)
	}

	first, _ := g.Generate(3)
	more, _ := g.Generate(3)

	fmt.Println(first)
	fmt.Println(more)

	// Output:
	// [{0 0} {1 15} {2 0}]
	// [{3 -15} {4 0} {5 15}]
}
