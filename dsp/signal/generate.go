// Package signal synthesizes deterministic test stimuli for converter
// measurement: volt-domain tones and noise, and their quantization into
// ADC codes.
package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals at one sample rate. Amplitudes
// are in the engine's volt convention: 1.0 is positive full scale.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given sample rate.
func NewGenerator(sampleRate float64, opts ...Option) *Generator {
	g := &Generator{
		sampleRate: sampleRate,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// BinFrequency returns the frequency that lands centered on the given bin
// of a capture of the given length. Tones at bin centers are coherent: no
// spectral leakage under a rectangular window.
func (g *Generator) BinFrequency(bin, samples int) float64 {
	return float64(bin) * g.sampleRate / float64(samples)
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.sampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// HarmonicSeries generates a fundamental plus its harmonic orders:
// amplitudes[0] drives freqHz, amplitudes[k] drives (k+1)*freqHz. Orders
// above Nyquist alias back into the first zone, which is exactly what the
// measurement pipeline's folding expects from an undersampled harmonic.
func (g *Generator) HarmonicSeries(freqHz float64, amplitudes []float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("harmonic series samples must be > 0: %d", samples)
	}

	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("harmonic series sample rate must be > 0: %f", g.sampleRate)
	}

	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("harmonic series needs at least the fundamental amplitude")
	}

	out := make([]float64, samples)

	for order, amp := range amplitudes {
		if amp == 0 {
			continue
		}

		step := 2 * math.Pi * freqHz * float64(order+1) / g.sampleRate
		for i := range out {
			out[i] += amp * math.Sin(step*float64(i))
		}
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0

	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
