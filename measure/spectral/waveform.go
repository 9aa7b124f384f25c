package spectral

import (
	"fmt"
	"math"

	"github.com/analogdevicesinc/precision-converters-library/stats/waveform"
)

// waveformStage characterizes the block's DC content and removes it.
//
// Order matters: min/max amplitudes convert the raw DC-coupled codes, the
// transition noise truncates to whole LSBs before its volt conversion, and
// the offset subtraction happens last, in place, so the transform stages
// see a DC-free block.
func (p *Processor) waveformStage(block []int32, m *Measurements) error {
	s, err := waveform.Accumulate(block)
	if err != nil {
		return fmt.Errorf("waveform statistics: %w", err)
	}

	offset := int32(s.Mean)
	m.DCLSB = offset + p.cfg.ZeroScale

	m.MaxVolts = p.cfg.Codec.ToVoltsRef(s.Max)
	m.MinVolts = p.cfg.Codec.ToVoltsRef(s.Min)
	m.PeakToPeakVolts = m.MaxVolts - m.MinVolts
	m.DCVolts = 2 * p.cfg.VRef * float64(m.DCLSB-p.cfg.ZeroScale) / float64(p.cfg.FullScale)

	m.MaxLSB = s.Max + p.cfg.ZeroScale
	m.MinLSB = s.Min + p.cfg.ZeroScale
	m.PeakToPeakLSB = m.MaxLSB - m.MinLSB

	deviation := math.Sqrt(s.Deviation / float64(len(block)))
	m.TransitionNoiseLSB = uint32(deviation)
	m.TransitionNoiseVolts = 2 * p.cfg.VRef * float64(m.TransitionNoiseLSB) / float64(p.cfg.FullScale)
	m.RMSNoiseVolts = m.TransitionNoiseVolts

	for i := range block {
		block[i] -= offset
	}

	return nil
}
