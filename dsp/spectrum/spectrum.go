package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// MagnitudeInto computes |X[k]| for the first len(dst) bins of a complex
// spectrum into dst. bins must hold at least len(dst) entries.
//
// This is the repeated-capture fast path: scratch buffers are pooled
// internally, so in steady state it does not allocate. SIMD-optimized
// implementations are used when available.
func MagnitudeInto(dst []float64, bins []complex128) {
	if len(dst) == 0 {
		return
	}

	re, im, buf := getScratch(len(dst))

	for i := range dst {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	MagnitudeInto(out, bins)

	return out
}

// FoldToFirstZone maps a bin index beyond the first Nyquist zone back into
// it. zoneLength is the bin count of one zone; even zones mirror, odd
// zones translate.
//
// A bin at an exact zone boundary folds onto zoneLength itself, one past
// the last in-zone index. Callers that index a half spectrum clamp the
// result.
func FoldToFirstZone(bin, zoneLength int) int {
	if bin < zoneLength {
		return bin
	}

	zone := 1 + bin/zoneLength
	if zone%2 == 1 {
		return zoneLength - (zoneLength*zone - bin)
	}

	return zoneLength*zone - bin
}
