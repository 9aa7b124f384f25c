// Package device describes converters under test. A profile names the
// properties the measurement engine needs (resolution, reference voltage,
// sample rate, output coding, analysis window) and is usually loaded from
// a YAML file shipped alongside the capture.
package device

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/analogdevicesinc/precision-converters-library/dsp/window"
	"github.com/analogdevicesinc/precision-converters-library/measure/spectral"
)

// Output coding kinds accepted in the profile's codec field.
const (
	CodecOffsetBinary   = "offset-binary"
	CodecTwosComplement = "twos-complement"
)

var (
	// ErrUnknownCodec reports a codec field naming no supported output
	// coding.
	ErrUnknownCodec = errors.New("unknown codec kind")
	// ErrInvalidProfile reports a profile field outside its valid domain.
	ErrInvalidProfile = errors.New("invalid device profile")
)

// Profile describes one converter setup.
type Profile struct {
	// Name identifies the part, e.g. "ad4170".
	Name string `yaml:"name"`
	// Bits is the converter resolution.
	Bits int `yaml:"bits"`
	// VRef is the reference voltage in volts.
	VRef float64 `yaml:"vref"`
	// SampleRate is the output data rate in samples per second.
	SampleRate float64 `yaml:"sample_rate"`
	// Codec selects the output coding, "offset-binary" or
	// "twos-complement".
	Codec string `yaml:"codec"`
	// Window names the analysis window. Empty selects the 7-term
	// Blackman-Harris.
	Window string `yaml:"window,omitempty"`
}

// Load reads a profile from a YAML file and validates it.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// Validate checks every profile field against its domain.
func (p Profile) Validate() error {
	kind, err := p.codecKind()
	if err != nil {
		return err
	}

	// Offset-binary mid scale must fit a signed 32-bit code, which caps
	// that coding at 31 bits.
	maxBits := 32
	if kind == CodecOffsetBinary {
		maxBits = 31
	}
	if p.Bits < 2 || p.Bits > maxBits {
		return fmt.Errorf("%w: bits %d outside [2, %d] for %s", ErrInvalidProfile, p.Bits, maxBits, kind)
	}

	if p.VRef <= 0 || math.IsNaN(p.VRef) || math.IsInf(p.VRef, 0) {
		return fmt.Errorf("%w: vref %v", ErrInvalidProfile, p.VRef)
	}

	if p.SampleRate <= 0 || math.IsNaN(p.SampleRate) || math.IsInf(p.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate %v", ErrInvalidProfile, p.SampleRate)
	}

	if p.Window != "" {
		if _, err := window.ParseType(p.Window); err != nil {
			return err
		}
	}

	return nil
}

// EngineConfig derives the measurement configuration for a capture of the
// given length. Full scale and zero scale follow the output coding: offset
// binary rebases around mid scale, two's complement around zero.
func (p Profile) EngineConfig(samples int) (spectral.Config, error) {
	if err := p.Validate(); err != nil {
		return spectral.Config{}, err
	}

	cfg := spectral.Config{
		VRef:       p.VRef,
		SampleRate: p.SampleRate,
		Samples:    samples,
	}

	kind, _ := p.codecKind()
	switch kind {
	case CodecOffsetBinary:
		c := spectral.OffsetBinaryCodec{Bits: p.Bits, VRef: p.VRef}
		cfg.Codec = c
		cfg.FullScale = c.FullScale()
		cfg.ZeroScale = c.ZeroScale()
	case CodecTwosComplement:
		c := spectral.TwosComplementCodec{Bits: p.Bits, VRef: p.VRef}
		cfg.Codec = c
		cfg.FullScale = c.FullScale()
		cfg.ZeroScale = c.ZeroScale()
	}

	if p.Window != "" {
		t, err := window.ParseType(p.Window)
		if err != nil {
			return spectral.Config{}, err
		}
		cfg.Window = t
	}

	return cfg, nil
}

func (p Profile) codecKind() (string, error) {
	switch strings.ToLower(strings.TrimSpace(p.Codec)) {
	case "offset-binary", "offset_binary":
		return CodecOffsetBinary, nil
	case "twos-complement", "twos_complement", "2s-complement":
		return CodecTwosComplement, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCodec, p.Codec)
	}
}
