package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin tone.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window terms by direct
// DFT evaluation. It is meant for diagnostics and reporting, not for the
// measurement hot path.
func Analyze(terms []float64) Analysis {
	n := len(terms)
	if n == 0 {
		return Analysis{}
	}

	pr := probe{terms: terms, n: float64(n)}

	pr.dcRef = pr.magSq(0)
	if pr.dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0

	for _, c := range terms {
		sum += c
		sumSq += c * c
	}

	firstMin := pr.firstMinimum()

	return Analysis{
		CoherentGain:      sum / pr.n,
		ENBW:              pr.n * sumSq / (sum * sum),
		Bandwidth3dB:      pr.halfPowerWidth(),
		HighestSidelobedB: pr.highestSidelobe(firstMin),
		FirstMinimumBins:  firstMin,
		ScallopLossdB:     pr.scallopLoss(),
	}
}

// probe evaluates the window's DFT magnitude response at arbitrary
// normalised frequencies in [0, 0.5].
type probe struct {
	terms []float64
	n     float64
	dcRef float64
}

func (p *probe) magSq(freq float64) float64 {
	w := 2 * math.Pi * freq

	re, im := 0.0, 0.0
	for k, c := range p.terms {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// scallopLoss is the response at a half-bin offset relative to DC.
func (p *probe) scallopLoss() float64 {
	halfBin := p.magSq(0.5 / p.n)
	if halfBin <= 0 {
		return 0
	}

	return 10 * math.Log10(halfBin/p.dcRef)
}

// halfPowerWidth bisects for the -3 dB crossing and returns the two-sided
// width in bins.
func (p *probe) halfPowerWidth() float64 {
	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if p.magSq(mid)/p.dcRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo * p.n
}

// firstMinimum scans outward from DC for the first spectral null and
// refines it by golden-section search. The scan requires the response to
// drop below a tenth of DC before accepting a turn-around, so a wide main
// lobe plateau does not register as a null.
func (p *probe) firstMinimum() float64 {
	step := 1 / (p.n * 8)
	threshold := p.dcRef * 0.1

	prev := p.dcRef
	coarse := step

	for freq := step; freq < 0.5; freq += step {
		val := p.magSq(freq)
		if prev < threshold && val > prev {
			coarse = freq - step
			break
		}

		prev = val
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(0.5, coarse+2*step)

	const phi = 0.6180339887498949

	c := b - phi*(b-a)
	d := a + phi*(b-a)

	for range 80 {
		if p.magSq(c) < p.magSq(d) {
			b = d
		} else {
			a = c
		}

		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2 * p.n
}

// highestSidelobe scans from the first null to Nyquist for the largest
// response, with a fine pass around the coarse winner.
func (p *probe) highestSidelobe(firstMinBins float64) float64 {
	start := firstMinBins / p.n
	step := 1 / (p.n * 8)

	peakVal := 0.0
	peakFreq := start

	for freq := start; freq < 0.5; freq += step {
		if val := p.magSq(freq); val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	fine := step / 32
	for freq := math.Max(0, peakFreq-step); freq <= peakFreq+step; freq += fine {
		if val := p.magSq(freq); val > peakVal {
			peakVal = val
		}
	}

	if peakVal <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(peakVal/p.dcRef)
}
