package spectral

import (
	"errors"

	"github.com/analogdevicesinc/precision-converters-library/dsp/window"
)

var (
	// ErrInvalidArgument reports a configuration or call argument outside
	// its valid domain.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNilCodec reports a configuration without a device codec.
	ErrNilCodec = errors.New("codec is required")
	// ErrBadSampleCount reports a capture length that is not a power of
	// two of at least the supported minimum.
	ErrBadSampleCount = errors.New("sample count must be a power of two >= 64")
	// ErrBlockLength reports a capture block whose length does not match
	// the configured sample count.
	ErrBlockLength = errors.New("capture block length mismatch")
	// ErrNoFundamental reports a spectrum with no bin above the search
	// floor; the block carried no measurable signal.
	ErrNoFundamental = errors.New("no fundamental above search floor")
	// ErrNoNoiseBins reports a spectrum in which the DC guard, fundamental
	// and harmonic exclusions left no noise candidates.
	ErrNoNoiseBins = errors.New("no noise bins outside exclusion windows")
)

// ErrUnknownWindow aliases the window package's unknown-type sentinel so
// callers can match either name.
var ErrUnknownWindow = window.ErrUnknownType
