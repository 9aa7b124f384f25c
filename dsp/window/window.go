// Package window generates analysis-window terms for spectral measurement
// of data-converter captures and reports their spectral properties.
package window

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeBlackmanHarris7Term is the default analysis window for converter
	// characterization. Its sidelobes sit far below the noise floor of any
	// practical converter, so windowing leakage never masks harmonics.
	TypeBlackmanHarris7Term Type = iota
	// TypeRectangular applies no weighting (all terms = 1).
	TypeRectangular
)

// String returns the canonical window name.
func (t Type) String() string {
	switch t {
	case TypeBlackmanHarris7Term:
		return "blackman-harris-7term"
	case TypeRectangular:
		return "rectangular"
	default:
		return fmt.Sprintf("window(%d)", int(t))
	}
}

// ParseType resolves a window name as used in profiles and on the command
// line. Matching is case-insensitive.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blackman-harris-7term", "blackman-harris", "bh7":
		return TypeBlackmanHarris7Term, nil
	case "rectangular", "rect", "none":
		return TypeRectangular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// sevenTermCoeffs are the cosine-series coefficients of the 7-term
// Blackman-Harris window. The values are carried at full precision; the
// amplitude correction in the dB normalization depends on them exactly.
var sevenTermCoeffs = [7]float64{
	0.27105140069342,
	-0.43329793923448,
	0.21812299954311,
	-0.06592544638803,
	0.01081174209837,
	-0.00077658482522,
	0.00001388721735,
}

// tableLength is the span of the precomputed 7-term table. Captures at or
// below this length take their terms from the table instead of evaluating
// the cosine series per sample; shorter captures use a truncated prefix of
// the same table.
const tableLength = 4096

var (
	tableOnce sync.Once
	bhTable   []float64
	bhSum     float64
)

// sevenTermTable returns the shared 4096-entry table and its full term sum.
// The table is built once and is read-only afterwards.
func sevenTermTable() ([]float64, float64) {
	tableOnce.Do(func() {
		bhTable = make([]float64, tableLength)
		sum := 0.0

		for n := range bhTable {
			v := sevenTermAt(n, tableLength-1)
			bhTable[n] = v
			sum += v
		}

		bhSum = sum
	})

	return bhTable, bhSum
}

// sevenTermAt evaluates the cosine series at sample n of a window whose
// last sample index is denominator.
func sevenTermAt(n, denominator int) float64 {
	phase := 2 * math.Pi * float64(n) / float64(denominator)

	sum := 0.0
	for k, c := range sevenTermCoeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// Provider fills per-sample window terms for one capture length.
//
// Two strategies exist for the 7-term Blackman-Harris window: a table
// lookup for capture lengths the precomputed table covers, and per-sample
// synthesis above that. Both produce identical terms at the table boundary
// length.
type Provider interface {
	// SampleCount returns the term count the provider was built for.
	SampleCount() int
	// Fill writes one term per sample into dst and returns the term sum
	// accumulated in index order. len(dst) must equal SampleCount.
	Fill(dst []float64) (float64, error)
}

// NewProvider selects the term strategy for a window type at the given
// capture length.
func NewProvider(t Type, sampleCount int) (Provider, error) {
	if err := validateSampleCount(sampleCount); err != nil {
		return nil, err
	}

	switch t {
	case TypeBlackmanHarris7Term:
		if sampleCount <= tableLength {
			return &tableProvider{n: sampleCount}, nil
		}

		return &synthesisProvider{n: sampleCount}, nil
	case TypeRectangular:
		return &rectangularProvider{n: sampleCount}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
}

// Terms generates window terms into a new slice.
func Terms(t Type, sampleCount int) ([]float64, error) {
	p, err := NewProvider(t, sampleCount)
	if err != nil {
		return nil, err
	}

	out := make([]float64, sampleCount)
	if _, err := p.Fill(out); err != nil {
		return nil, err
	}

	return out, nil
}

// CorrectionSum returns the divisor for window amplitude correction of a
// spectrum computed over sampleCount samples. accumulated is the term sum
// returned by [Provider.Fill].
//
// The 7-term window at exactly the table length uses the precomputed
// full-table sum; the rectangular window uses the sample count; every other
// combination uses the accumulated sum, which must be positive.
func CorrectionSum(t Type, sampleCount int, accumulated float64) (float64, error) {
	switch t {
	case TypeBlackmanHarris7Term:
		if sampleCount == tableLength {
			_, sum := sevenTermTable()
			return sum, nil
		}

		if accumulated <= 0 {
			return 0, fmt.Errorf("%w: %g", ErrNonPositiveSum, accumulated)
		}

		return accumulated, nil
	case TypeRectangular:
		return float64(sampleCount), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
}

// ApplyTermsInPlace multiplies samples by window terms in place.
func ApplyTermsInPlace(samples, terms []float64) error {
	if len(samples) != len(terms) {
		return fmt.Errorf("%w: %d != %d", ErrMismatchedLength, len(samples), len(terms))
	}

	vecmath.MulBlockInPlace(samples, terms)

	return nil
}

type tableProvider struct {
	n int
}

func (p *tableProvider) SampleCount() int { return p.n }

func (p *tableProvider) Fill(dst []float64) (float64, error) {
	if len(dst) != p.n {
		return 0, fmt.Errorf("%w: %d != %d", ErrMismatchedLength, len(dst), p.n)
	}

	table, _ := sevenTermTable()
	copy(dst, table[:p.n])

	sum := 0.0
	for _, v := range dst {
		sum += v
	}

	return sum, nil
}

type synthesisProvider struct {
	n int
}

func (p *synthesisProvider) SampleCount() int { return p.n }

func (p *synthesisProvider) Fill(dst []float64) (float64, error) {
	if len(dst) != p.n {
		return 0, fmt.Errorf("%w: %d != %d", ErrMismatchedLength, len(dst), p.n)
	}

	den := p.n - 1

	sum := 0.0
	for i := range dst {
		v := sevenTermAt(i, den)
		dst[i] = v
		sum += v
	}

	return sum, nil
}

type rectangularProvider struct {
	n int
}

func (p *rectangularProvider) SampleCount() int { return p.n }

func (p *rectangularProvider) Fill(dst []float64) (float64, error) {
	if len(dst) != p.n {
		return 0, fmt.Errorf("%w: %d != %d", ErrMismatchedLength, len(dst), p.n)
	}

	for i := range dst {
		dst[i] = 1
	}

	return float64(p.n), nil
}
