package spectral

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/analogdevicesinc/precision-converters-library/dsp/spectrum"
	"github.com/analogdevicesinc/precision-converters-library/dsp/window"
)

// Processor runs the measurement pipeline over capture blocks of one
// configured length. It owns the FFT plan, the window terms, and all
// working buffers, so Perform does not allocate.
type Processor struct {
	cfg      Config
	plan     *algofft.Plan[complex128]
	terms    []float64
	termSum  float64
	binWidth float64
	done     bool

	volts   []float64
	cbuf    []complex128
	mag     []float64
	magCorr []float64
	db      []float64
	noise   []float64
}

// New builds a Processor and a Measurements record for the given
// configuration. The Measurements struct is reused across Perform calls.
func New(cfg Config, opts ...Option) (*Processor, *Measurements, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.windowSet {
		cfg.Window = o.window
	}

	p := &Processor{}
	if err := p.prime(cfg, o.maxSamples); err != nil {
		return nil, nil, err
	}

	return p, &Measurements{}, nil
}

// Reconfigure re-derives the plan, window terms, and buffer views for a
// new configuration. Storage is reused when the capacity from construction
// allows, so growing within WithMaxSamples stays allocation-free. On error
// the previous configuration remains in effect.
func (p *Processor) Reconfigure(cfg Config) error {
	return p.prime(cfg, 0)
}

// prime validates and installs a configuration. Fallible setup (window
// provider, FFT plan) happens before any state changes.
func (p *Processor) prime(cfg Config, capacity int) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	provider, err := window.NewProvider(cfg.Window, cfg.Samples)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	plan := p.plan
	if plan == nil || cfg.Samples != p.cfg.Samples {
		plan, err = algofft.NewPlan64(cfg.Samples)
		if err != nil {
			return fmt.Errorf("fft plan: %w", err)
		}
	}

	n := cfg.Samples
	if capacity < n {
		capacity = n
	}

	if cap(p.volts) >= n {
		p.volts = p.volts[:n]
		p.cbuf = p.cbuf[:n]
		p.terms = p.terms[:n]
		p.mag = p.mag[:n/2]
		p.magCorr = p.magCorr[:n/2]
		p.db = p.db[:n/2]
		p.noise = p.noise[:n/2]
	} else {
		p.volts = make([]float64, n, capacity)
		p.cbuf = make([]complex128, n, capacity)
		p.terms = make([]float64, n, capacity)
		p.mag = make([]float64, n/2, capacity/2)
		p.magCorr = make([]float64, n/2, capacity/2)
		p.db = make([]float64, n/2, capacity/2)
		p.noise = make([]float64, n/2, capacity/2)
	}

	sum, err := provider.Fill(p.terms)
	if err != nil {
		return fmt.Errorf("window terms: %w", err)
	}

	p.plan = plan
	p.termSum = sum
	p.cfg = cfg
	p.binWidth = 0
	p.done = false

	return nil
}

// Perform runs one measurement over block, overwriting m. The block must
// have the configured length; its DC offset is subtracted in place as a
// documented side effect, so a block must not be re-submitted after a run.
//
// On error the processor's done flag stays false and m holds partial
// values that must not be displayed.
func (p *Processor) Perform(block []int32, m *Measurements) error {
	if m == nil {
		return fmt.Errorf("%w: nil measurements", ErrInvalidArgument)
	}

	if len(block) != p.cfg.Samples {
		return fmt.Errorf("%w: got %d, configured %d", ErrBlockLength, len(block), p.cfg.Samples)
	}

	p.done = false
	p.binWidth = p.cfg.SampleRate / float64(p.cfg.Samples)

	if err := p.waveformStage(block, m); err != nil {
		return err
	}

	for i, c := range block {
		p.volts[i] = p.cfg.Codec.ToVolts(c)
	}

	if err := window.ApplyTermsInPlace(p.volts, p.terms); err != nil {
		return fmt.Errorf("windowing: %w", err)
	}

	for i, v := range p.volts {
		p.cbuf[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.cbuf, p.cbuf); err != nil {
		return fmt.Errorf("fft: %w", err)
	}

	spectrum.MagnitudeInto(p.mag, p.cbuf)

	if err := p.normalizeStage(); err != nil {
		return err
	}

	if err := p.harmonicStage(m); err != nil {
		return err
	}

	if err := p.noiseStage(m); err != nil {
		return err
	}

	p.done = true

	return nil
}

// normalizeStage applies the window amplitude correction and converts the
// half spectrum to dBFS. The factor 2 restores the energy of the discarded
// conjugate half.
func (p *Processor) normalizeStage() error {
	coeffSum, err := window.CorrectionSum(p.cfg.Window, p.cfg.Samples, p.termSum)
	if err != nil {
		return fmt.Errorf("correction sum: %w", err)
	}

	for i, v := range p.mag {
		corrected := v * 2 / coeffSum
		p.magCorr[i] = corrected
		p.db[i] = 20 * math.Log10(corrected)
	}

	return nil
}

// SpectrumDB returns the half spectrum in dBFS after a successful Perform,
// nil otherwise. The slice is valid until the next Perform or Reconfigure.
func (p *Processor) SpectrumDB() []float64 {
	if !p.done {
		return nil
	}

	return p.db
}

// CorrectedMagnitude returns the window-corrected linear half spectrum
// after a successful Perform, nil otherwise.
func (p *Processor) CorrectedMagnitude() []float64 {
	if !p.done {
		return nil
	}

	return p.magCorr
}

// NoiseBins returns the corrected magnitudes with DC, fundamental, and
// harmonic windows zeroed, after a successful Perform.
func (p *Processor) NoiseBins() []float64 {
	if !p.done {
		return nil
	}

	return p.noise
}

// BinWidth returns the bin width in Hz of the most recent Perform, 0
// before the first run.
func (p *Processor) BinWidth() float64 { return p.binWidth }

// FFTLength returns the transform length, equal to the configured capture
// block length. The observable spectrum spans FFTLength()/2 bins.
func (p *Processor) FFTLength() int { return p.cfg.Samples }

// Done reports whether the most recent Perform completed.
func (p *Processor) Done() bool { return p.done }
