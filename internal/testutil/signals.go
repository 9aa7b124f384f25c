// Package testutil provides deterministic capture-block builders and
// shared assertions for the measurement packages' tests.
package testutil

import "math"

// ToneCodes builds a bin-centered quantized sine capture: amp in code
// units, offset in codes. Bin-centered tones are coherent, so tests see
// leakage-free spectra without windowing.
func ToneCodes(samples, bin int, amp float64, offset int32) []int32 {
	out := make([]int32, samples)

	for i := range out {
		phase := 2 * math.Pi * float64(bin) * float64(i) / float64(samples)
		out[i] = offset + int32(math.Round(amp*math.Sin(phase)))
	}

	return out
}

// CodesToVolts converts codes to the engine volt convention: positive full
// scale at the given resolution reads 1.0.
func CodesToVolts(codes []int32, bits int) []float64 {
	scale := float64(int64(1) << (bits - 1))
	out := make([]float64, len(codes))

	for i, c := range codes {
		out[i] = float64(c) / scale
	}

	return out
}
