package spectral

import (
	"fmt"
	"math"
)

// drCorrectionDB is the LabVIEW FFT-core dynamic-range correction carried
// for result compatibility with the reference bench tooling.
const drCorrectionDB = 4.48

// noiseStage derives the noise and dynamic-range metrics from the bins
// outside the DC guard and the fundamental/harmonic exclusion windows.
//
//nolint:funlen
func (p *Processor) noiseStage(m *Measurements) error {
	half := len(p.magCorr)

	for i := 0; i < dcGuardBins && i < half; i++ {
		p.noise[i] = 0
	}

	rss := 0.0
	mean := 0.0
	peakAmp := 0.0
	peakBin := 0

	for i := dcGuardBins; i < half; i++ {
		if p.excludedBin(i, m) {
			p.noise[i] = 0
			continue
		}

		v := p.magCorr[i]
		p.noise[i] = v

		s := v / (2 * math.Sqrt2)
		rss += s * s
		mean += v

		if v > peakAmp {
			peakAmp = v
			peakBin = i
		}
	}

	if peakAmp == 0 {
		return fmt.Errorf("%w: %d-bin spectrum fully excluded", ErrNoNoiseBins, half)
	}

	// The mean divides by the full half-spectrum length, not the count of
	// surviving bins. Reference behavior.
	mean /= float64(half)
	rss = math.Sqrt(rss) * 2 * math.Sqrt2

	m.PeakSpuriousBin = peakBin
	m.PeakSpurious_dB = 20 * math.Log10(1/peakAmp)
	m.AverageBinNoise_dB = 20 * math.Log10(mean)

	m.DR_dB = 20*math.Log10(1/rss) + drCorrectionDB
	m.SNR_dB = 20 * math.Log10(m.Harmonics[0].Power/rss)
	m.SINAD_dB = -10 * math.Log10(math.Pow(10, -math.Abs(m.SNR_dB)/10)+
		math.Pow(10, -math.Abs(m.THD_dB)/10))
	m.ENOB = (m.SINAD_dB - 1.67 + math.Abs(m.Harmonics[0].Magnitude_dBFS)) / 6.02

	// Biggest spur, in one dBFS convention: the strongest harmonic or the
	// peak spurious noise bin, whichever sits higher.
	spur := m.Harmonics[1].Magnitude_dBFS
	for i := 2; i < len(m.Harmonics); i++ {
		if m.Harmonics[i].Magnitude_dBFS > spur {
			spur = m.Harmonics[i].Magnitude_dBFS
		}
	}

	if peakDBFS := 20 * math.Log10(peakAmp); peakDBFS > spur {
		spur = peakDBFS
	}

	m.SFDR_dBc = spur - m.Harmonics[0].Magnitude_dBFS
	m.SFDR_dBFS = spur

	return nil
}

// excludedBin reports whether a bin falls in the fundamental's +/-10-bin
// spread or any harmonic's +/-3-bin spread.
func (p *Processor) excludedBin(bin int, m *Measurements) bool {
	if withinSpan(bin, m.Harmonics[0].Bin, fundSpanBins) {
		return true
	}

	for i := 1; i < len(m.Harmonics); i++ {
		if withinSpan(bin, m.Harmonics[i].Bin, harmSpanBins) {
			return true
		}
	}

	return false
}

func withinSpan(bin, center, span int) bool {
	return bin >= center-span && bin <= center+span
}
