package capture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/analogdevicesinc/precision-converters-library/internal/testutil"
)

func TestWAVRoundTrip(t *testing.T) {
	codes := testutil.ToneCodes(512, 5, 12000, 100)
	path := filepath.Join(t.TempDir(), "cap.wav")

	if err := WriteWAV(path, Block{Codes: codes, SampleRate: 48000}); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	got, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}
	if got.SampleRate != 48000 {
		t.Fatalf("sample rate = %g, want 48000", got.SampleRate)
	}
	if got.Len() != len(codes) {
		t.Fatalf("length = %d, want %d", got.Len(), len(codes))
	}
	for i := range codes {
		if got.Codes[i] != codes[i] {
			t.Fatalf("code[%d] = %d, want %d", i, got.Codes[i], codes[i])
		}
	}
}

func TestWAVRoundTripWideCodes(t *testing.T) {
	// 24-bit extremes and a sign change must survive the 32-bit container.
	codes := []int32{-8388608, -1, 0, 1, 8388607, -4096000}
	path := filepath.Join(t.TempDir(), "wide.wav")

	if err := WriteWAV(path, Block{Codes: codes, SampleRate: 1000000}); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	got, err := ReadWAV(path)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}
	for i := range codes {
		if got.Codes[i] != codes[i] {
			t.Fatalf("code[%d] = %d, want %d", i, got.Codes[i], codes[i])
		}
	}
}

func TestWriteWAVValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")

	err := WriteWAV(path, Block{SampleRate: 48000})
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("empty block error = %v, want ErrNoSamples", err)
	}

	err = WriteWAV(path, Block{Codes: []int32{1}, SampleRate: 0})
	if !errors.Is(err, ErrBadSampleRate) {
		t.Fatalf("zero rate error = %v, want ErrBadSampleRate", err)
	}
}

func TestReadWAVInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("this is not a riff container"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := ReadWAV(path)
	if !errors.Is(err, ErrInvalidWAV) {
		t.Fatalf("error = %v, want ErrInvalidWAV", err)
	}
}

func TestReadWAVMissingFile(t *testing.T) {
	_, err := ReadWAV(filepath.Join(t.TempDir(), "absent.wav"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadWAVRejectsStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	enc := wav.NewEncoder(f, 48000, 32, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 48000},
		Data:           []int{1, 2, 3, 4, 5, 6},
		SourceBitDepth: 32,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoder write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("encoder close: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file close: %v", err)
	}

	_, err = ReadWAV(path)
	if !errors.Is(err, ErrMultiChannel) {
		t.Fatalf("error = %v, want ErrMultiChannel", err)
	}
}
