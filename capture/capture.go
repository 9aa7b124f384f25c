// Package capture stores and loads ADC capture blocks.
//
// A capture block is a finite run of raw converter output codes together
// with the sample rate it was acquired at. Blocks travel between tools as
// mono 32-bit PCM WAV files, which keep the rate in the header, or as plain
// CSV code lists, which rely on the caller to supply the rate.
package capture

// Block is one acquisition: raw ADC output codes and the rate they were
// sampled at, in samples per second.
type Block struct {
	Codes      []int32
	SampleRate float64
}

// Len returns the number of samples in the block.
func (b Block) Len() int {
	return len(b.Codes)
}
