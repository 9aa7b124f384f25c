package waveform

import (
	"math"
	"testing"
)

func BenchmarkAccumulate(b *testing.B) {
	codes := make([]int32, 4096)
	for i := range codes {
		codes[i] = int32(30000 * math.Sin(2*math.Pi*100*float64(i)/4096))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Accumulate(codes)
	}
}
