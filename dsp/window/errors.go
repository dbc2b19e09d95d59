package window

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fmscope/dsp/core"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d: %w", size, core.ErrConfiguration)
	}
	return nil
}

func validateType(t Type) error {
	if !t.Valid() {
		return fmt.Errorf("unknown window type %d: %w", int(t), core.ErrConfiguration)
	}
	return nil
}
