package capture

import "errors"

var (
	// ErrNoSamples reports an empty capture block.
	ErrNoSamples = errors.New("capture holds no samples")
	// ErrBadSampleRate reports a non-positive sample rate.
	ErrBadSampleRate = errors.New("sample rate must be positive")
	// ErrInvalidWAV reports a file that is not a readable WAV container.
	ErrInvalidWAV = errors.New("not a valid wav file")
	// ErrMultiChannel reports a WAV file with more than one channel;
	// capture blocks are single-converter and therefore mono.
	ErrMultiChannel = errors.New("multi-channel wav unsupported")
)
