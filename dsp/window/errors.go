package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType reports an unrecognized window type.
	ErrUnknownType = errors.New("unknown window type")
	// ErrNonPositiveSum reports an accumulated term sum unusable for
	// amplitude correction.
	ErrNonPositiveSum = errors.New("window term sum must be > 0")
	// ErrMismatchedLength reports a destination or sample slice whose
	// length does not match the provider's sample count.
	ErrMismatchedLength = errors.New("slice length does not match window sample count")
)

func validateSampleCount(n int) error {
	if n <= 1 {
		return fmt.Errorf("window sample count must be > 1: %d", n)
	}

	return nil
}
