package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/analogdevicesinc/precision-converters-library/dsp/window"
)

func TestNewRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"nil codec", func(c *Config) { c.Codec = nil }, ErrNilCodec},
		{"not power of two", func(c *Config) { c.Samples = 1000 }, ErrBadSampleCount},
		{"below minimum", func(c *Config) { c.Samples = 32 }, ErrBadSampleCount},
		{"zero samples", func(c *Config) { c.Samples = 0 }, ErrBadSampleCount},
		{"zero vref", func(c *Config) { c.VRef = 0 }, ErrInvalidArgument},
		{"nan vref", func(c *Config) { c.VRef = math.NaN() }, ErrInvalidArgument},
		{"zero rate", func(c *Config) { c.SampleRate = 0 }, ErrInvalidArgument},
		{"negative rate", func(c *Config) { c.SampleRate = -1 }, ErrInvalidArgument},
		{"inf rate", func(c *Config) { c.SampleRate = math.Inf(1) }, ErrInvalidArgument},
		{"zero full scale", func(c *Config) { c.FullScale = 0 }, ErrInvalidArgument},
		{"negative zero scale", func(c *Config) { c.ZeroScale = -1 }, ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig16(1024)
			tc.mutate(&cfg)

			if _, _, err := New(cfg); !errors.Is(err, tc.want) {
				t.Fatalf("New: got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewRejectsUnknownWindow(t *testing.T) {
	cfg := testConfig16(1024)
	cfg.Window = window.Type(99)

	if _, _, err := New(cfg); !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("New: got %v, want ErrUnknownWindow", err)
	}
}

func TestNewMinimumLength(t *testing.T) {
	// 64 samples is accepted, though the exclusion windows leave little
	// of a 32-bin half spectrum. Practical captures start far larger.
	p, _, err := New(testConfig16(64))
	if err != nil {
		t.Fatalf("New at minimum length: %v", err)
	}

	if got := p.FFTLength(); got != 64 {
		t.Fatalf("FFTLength = %d, want 64", got)
	}
}
