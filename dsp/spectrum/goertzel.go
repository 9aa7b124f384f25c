package spectrum

import (
	"fmt"
	"math"
)

// BinPower evaluates |X[k]|^2 of the DFT of samples at a single bin using
// the Goertzel recurrence, without computing the full transform.
//
// The block length fixes the bin grid: bin k corresponds to k cycles per
// block. bin must lie in [0, len(samples)/2]. The function exists as an
// independent cross-check on FFT-derived magnitudes and for spot checks on
// synthesized test tones.
func BinPower(samples []float64, bin int) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, fmt.Errorf("goertzel: empty sample block")
	}

	if bin < 0 || bin > n/2 {
		return 0, fmt.Errorf("goertzel: bin %d out of range [0, %d]", bin, n/2)
	}

	coeff := 2 * math.Cos(2*math.Pi*float64(bin)/float64(n))

	s0, s1 := 0.0, 0.0
	for _, x := range samples {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	return s0*s0 + s1*s1 - coeff*s0*s1, nil
}

// BinMagnitude evaluates |X[k]| of the DFT of samples at a single bin.
func BinMagnitude(samples []float64, bin int) (float64, error) {
	p, err := BinPower(samples, bin)
	if err != nil {
		return 0, err
	}

	if p <= 0 {
		return 0, nil
	}

	return math.Sqrt(p), nil
}
