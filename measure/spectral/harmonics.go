package spectral

import (
	"fmt"
	"math"

	"github.com/analogdevicesinc/precision-converters-library/dsp/spectrum"
)

const (
	// dcGuardBins excludes the DC spread from searches and noise sums.
	dcGuardBins = 10
	// fundSpanBins is the leakage spread of the fundamental, per side.
	fundSpanBins = 10
	// harmSpanBins is the leakage spread of a harmonic, per side.
	harmSpanBins = 3
	// searchFloorDB is the level a bin must exceed to count as a peak.
	searchFloorDB = -200.0
)

// harmonicStage locates the fundamental and harmonic orders 2 through 6,
// integrates their leakage power, and derives THD.
func (p *Processor) harmonicStage(m *Measurements) error {
	half := len(p.db)

	fundBin := -1
	fundDB := searchFloorDB

	for i := dcGuardBins; i < half; i++ {
		if p.db[i] > fundDB {
			fundDB = p.db[i]
			fundBin = i
		}
	}

	if fundBin < 0 {
		return fmt.Errorf("%w: no bin above %g dBFS", ErrNoFundamental, searchFloorDB)
	}

	m.Harmonics[0] = Harmonic{Bin: fundBin, Magnitude_dBFS: fundDB}
	m.FundamentalVolts = dbfsToVolts(p.cfg.VRef, fundDB)

	// Harmonics beyond the half spectrum fold back into it. The +/-3-bin
	// refinement absorbs placement error from the integer fundamental bin.
	for order := 2; order <= 6; order++ {
		expected := spectrum.FoldToFirstZone(fundBin*order, half)

		bestBin := clampInt(expected, 0, half-1)
		bestDB := searchFloorDB

		for b := expected - harmSpanBins; b <= expected+harmSpanBins; b++ {
			if b < 0 || b >= half {
				continue
			}

			if p.db[b] > bestDB {
				bestDB = p.db[b]
				bestBin = b
			}
		}

		m.Harmonics[order-1] = Harmonic{Bin: bestBin, Magnitude_dBFS: bestDB}
	}

	m.Harmonics[0].Power = p.leakagePower(m.Harmonics[0].Bin, fundSpanBins)
	for i := 1; i < len(m.Harmonics); i++ {
		m.Harmonics[i].Power = p.leakagePower(m.Harmonics[i].Bin, harmSpanBins)
	}

	sum := 0.0
	for i := 1; i < len(m.Harmonics); i++ {
		sum += m.Harmonics[i].Power * m.Harmonics[i].Power
	}

	m.THD_dB = 20 * math.Log10(math.Sqrt(sum)/m.Harmonics[0].Power)

	return nil
}

// leakagePower integrates the RMS-scaled magnitudes over a peak's spread
// window and rescales the root sum square back to a peak-equivalent
// amplitude. The window clamps at the spectrum edges.
func (p *Processor) leakagePower(center, span int) float64 {
	lo := clampInt(center-span, 0, len(p.magCorr)-1)
	hi := clampInt(center+span, 0, len(p.magCorr)-1)

	sum := 0.0

	for i := lo; i <= hi; i++ {
		v := p.magCorr[i] / (2 * math.Sqrt2)
		sum += v * v
	}

	return math.Sqrt(sum) * 2 * math.Sqrt2
}

func dbfsToVolts(vref, db float64) float64 {
	return 2 * vref * math.Pow(10, db/20)
}

func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}

	if val > hi {
		return hi
	}

	return val
}
