package spectral

import (
	"fmt"
	"math"

	"github.com/analogdevicesinc/precision-converters-library/dsp/window"
)

// minSamples is the smallest supported capture length.
const minSamples = 64

// Config describes one measurement setup: device scaling, capture sizing,
// and window selection. A Processor snapshots it at construction; use
// Reconfigure to change it afterwards.
type Config struct {
	// VRef is the reference voltage in volts.
	VRef float64
	// SampleRate is the capture rate in samples per second.
	SampleRate float64
	// Samples is the capture block length. Must be a power of two of at
	// least 64; the observable spectrum spans Samples/2 bins.
	Samples int
	// FullScale is the input code span, 2^resolution.
	FullScale int64
	// ZeroScale rebases codes into LSB amplitudes for reporting. Offset
	// binary devices use mid scale, two's-complement devices 0.
	ZeroScale int32
	// Window selects the analysis window. The zero value is the 7-term
	// Blackman-Harris.
	Window window.Type
	// Codec converts this device's codes to volts. Required.
	Codec Codec
}

type options struct {
	maxSamples int
	window     window.Type
	windowSet  bool
}

// Option adjusts Processor construction.
type Option func(*options)

// WithMaxSamples pre-sizes working storage for the largest capture length
// a later Reconfigure may select, keeping growth off the measurement path.
func WithMaxSamples(n int) Option {
	return func(o *options) { o.maxSamples = n }
}

// WithWindow overrides the configured window type.
func WithWindow(t window.Type) Option {
	return func(o *options) {
		o.window = t
		o.windowSet = true
	}
}

func validateConfig(cfg Config) error {
	if cfg.Codec == nil {
		return ErrNilCodec
	}

	if cfg.Samples < minSamples || !isPowerOfTwo(cfg.Samples) {
		return fmt.Errorf("%w: %d", ErrBadSampleCount, cfg.Samples)
	}

	if cfg.VRef <= 0 || math.IsNaN(cfg.VRef) || math.IsInf(cfg.VRef, 0) {
		return fmt.Errorf("%w: vref %v", ErrInvalidArgument, cfg.VRef)
	}

	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidArgument, cfg.SampleRate)
	}

	if cfg.FullScale <= 0 {
		return fmt.Errorf("%w: full scale %d", ErrInvalidArgument, cfg.FullScale)
	}

	if cfg.ZeroScale < 0 {
		return fmt.Errorf("%w: zero scale %d", ErrInvalidArgument, cfg.ZeroScale)
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
