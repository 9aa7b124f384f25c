package signal

import (
	"fmt"
	"math"
)

// Quantize converts volt-domain samples, with 1.0 at positive full scale,
// to signed codes at the given resolution. Values round to nearest and
// clamp to the code range, so a 1.0 sample saturates at positive full
// scale minus one LSB the way a real converter does.
func Quantize(samples []float64, bits int) ([]int32, error) {
	out := make([]int32, len(samples))
	if err := QuantizeInto(out, samples, bits); err != nil {
		return nil, err
	}

	return out, nil
}

// QuantizeInto quantizes samples into dst. len(dst) must equal
// len(samples).
func QuantizeInto(dst []int32, samples []float64, bits int) error {
	if bits < 2 || bits > 31 {
		return fmt.Errorf("quantize bits out of range [2, 31]: %d", bits)
	}

	if len(dst) != len(samples) {
		return fmt.Errorf("quantize length mismatch: %d != %d", len(dst), len(samples))
	}

	scale := float64(int64(1) << (bits - 1))
	hi := scale - 1
	lo := -scale

	for i, v := range samples {
		if math.IsNaN(v) {
			return fmt.Errorf("quantize sample %d is NaN", i)
		}

		scaled := math.Round(v * scale)

		switch {
		case scaled > hi:
			dst[i] = int32(hi)
		case scaled < lo:
			dst[i] = int32(lo)
		default:
			dst[i] = int32(scaled)
		}
	}

	return nil
}
