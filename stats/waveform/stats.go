// Package waveform computes code-domain statistics of raw converter
// capture blocks.
package waveform

import "errors"

// ErrEmptyBlock reports a capture block with no samples.
var ErrEmptyBlock = errors.New("empty capture block")

// Summary holds statistics over a block of raw ADC codes.
//
// Mean is the truncating integer division of Sum by the sample count, and
// Deviation accumulates squared offsets against that truncated mean. DC
// characterization downstream depends on both truncations.
type Summary struct {
	Samples   int
	Sum       int64
	Mean      int64
	Max       int32
	MaxPos    int
	Min       int32
	MinPos    int
	Deviation float64
}

// Accumulate computes the block summary in two passes: the first
// establishes the truncated mean, the second tracks extrema positions and
// the squared deviation. Ties keep the earliest position.
func Accumulate(codes []int32) (Summary, error) {
	if len(codes) == 0 {
		return Summary{}, ErrEmptyBlock
	}

	s := Summary{
		Samples: len(codes),
		Max:     codes[0],
		Min:     codes[0],
	}

	for _, c := range codes {
		s.Sum += int64(c)
	}

	s.Mean = s.Sum / int64(len(codes))
	mean := float64(s.Mean)

	for i, c := range codes {
		d := float64(c) - mean
		s.Deviation += d * d

		if c > s.Max {
			s.Max = c
			s.MaxPos = i
		}

		if c < s.Min {
			s.Min = c
			s.MinPos = i
		}
	}

	return s, nil
}
