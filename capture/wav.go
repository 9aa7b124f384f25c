package capture

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Blocks are stored as 32-bit PCM regardless of converter resolution, so
// codes up to 31 bits survive the container unchanged.
const wavBitDepth = 32

// ReadWAV loads a capture block from a mono WAV file. The integer PCM
// samples are taken verbatim as ADC codes and the sample rate comes from
// the container header.
func ReadWAV(path string) (Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return Block{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Block{}, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Block{}, fmt.Errorf("decode wav: %w", err)
	}

	if dec.NumChans != 1 {
		return Block{}, fmt.Errorf("%w: %d channels", ErrMultiChannel, dec.NumChans)
	}

	if len(buf.Data) == 0 {
		return Block{}, ErrNoSamples
	}

	codes := make([]int32, len(buf.Data))
	for i, v := range buf.Data {
		codes[i] = int32(v)
	}

	return Block{Codes: codes, SampleRate: float64(dec.SampleRate)}, nil
}

// WriteWAV stores a capture block as a mono 32-bit PCM WAV file. The
// sample rate is rounded to the nearest integer for the container header.
func WriteWAV(path string, b Block) error {
	if len(b.Codes) == 0 {
		return ErrNoSamples
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %g", ErrBadSampleRate, b.SampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}

	rate := int(b.SampleRate + 0.5)
	enc := wav.NewEncoder(f, rate, wavBitDepth, 1, 1)

	data := make([]int, len(b.Codes))
	for i, c := range b.Codes {
		data[i] = int(c)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("write wav: %w", err)
	}

	// The encoder rewrites the header on Close, so it must finish before
	// the file handle goes away.
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("finalize wav: %w", err)
	}

	return f.Close()
}
