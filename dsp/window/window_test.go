package window

import (
	"errors"
	"math"
	"testing"
)

func TestTermsFinite(t *testing.T) {
	for _, typ := range []Type{TypeBlackmanHarris7Term, TypeRectangular} {
		t.Run(typ.String(), func(t *testing.T) {
			terms, err := Terms(typ, 64)
			if err != nil {
				t.Fatalf("Terms: %v", err)
			}

			if len(terms) != 64 {
				t.Fatalf("len=%d, want 64", len(terms))
			}

			for i, v := range terms {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("term[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestParseType(t *testing.T) {
	cases := []struct {
		name string
		want Type
	}{
		{"blackman-harris-7term", TypeBlackmanHarris7Term},
		{"blackman-harris", TypeBlackmanHarris7Term},
		{"BH7", TypeBlackmanHarris7Term},
		{"rectangular", TypeRectangular},
		{"rect", TypeRectangular},
		{"none", TypeRectangular},
		{"  Rect  ", TypeRectangular},
	}

	for _, tc := range cases {
		got, err := ParseType(tc.name)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", tc.name, err)
		}

		if got != tc.want {
			t.Fatalf("ParseType(%q)=%v, want %v", tc.name, got, tc.want)
		}
	}

	if _, err := ParseType("hann"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestTableMatchesSynthesisAtBoundary(t *testing.T) {
	p, err := NewProvider(TypeBlackmanHarris7Term, tableLength)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	if _, ok := p.(*tableProvider); !ok {
		t.Fatalf("expected table strategy at boundary length, got %T", p)
	}

	fromTable := make([]float64, tableLength)
	tableSum, err := p.Fill(fromTable)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	synth := &synthesisProvider{n: tableLength}
	fromSynth := make([]float64, tableLength)
	synthSum, err := synth.Fill(fromSynth)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	for i := range fromTable {
		if !almostEqual(fromTable[i], fromSynth[i], 1e-12) {
			t.Fatalf("term[%d]: table %v, synthesis %v", i, fromTable[i], fromSynth[i])
		}
	}

	if !almostEqual(tableSum, synthSum, 1e-9) {
		t.Fatalf("sum: table %v, synthesis %v", tableSum, synthSum)
	}
}

func TestTableSumValue(t *testing.T) {
	// The full-table sum follows from the coefficients alone: the cosine
	// partials each contribute exactly one full period plus a single
	// wrapped sample, so the sum collapses to 4096*c0 + (sum(c) - c0).
	_, sum := sevenTermTable()

	if !almostEqual(sum, 1109.9554858986, 1e-6) {
		t.Fatalf("table sum=%v, want about 1109.9554858986", sum)
	}
}

func TestTruncatedPrefixBelowBoundary(t *testing.T) {
	terms, err := Terms(TypeBlackmanHarris7Term, 2048)
	if err != nil {
		t.Fatalf("Terms: %v", err)
	}

	for i := range terms {
		want := sevenTermAt(i, tableLength-1)
		if !almostEqual(terms[i], want, 1e-12) {
			t.Fatalf("term[%d]=%v, want table prefix value %v", i, terms[i], want)
		}
	}

	// The prefix covers the rising half of the full window only.
	if terms[0] > 1e-6 {
		t.Fatalf("first term=%v, want near zero", terms[0])
	}

	if terms[2047] < 0.9 {
		t.Fatalf("last term=%v, want near window peak", terms[2047])
	}
}

func TestSynthesisAboveBoundary(t *testing.T) {
	const n = 8192

	p, err := NewProvider(TypeBlackmanHarris7Term, n)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	if _, ok := p.(*synthesisProvider); !ok {
		t.Fatalf("expected synthesis strategy above boundary length, got %T", p)
	}

	terms := make([]float64, n)
	if _, err := p.Fill(terms); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if !almostEqual(terms[0], terms[n-1], 1e-12) {
		t.Fatalf("endpoints differ: %v vs %v", terms[0], terms[n-1])
	}

	peak := 0.0
	for _, v := range terms {
		peak = math.Max(peak, v)
	}

	if peak < 0.99 {
		t.Fatalf("peak=%v, want near 1", peak)
	}
}

func TestCorrectionSum(t *testing.T) {
	t.Run("seven-term table length", func(t *testing.T) {
		// At the table length the precomputed sum wins regardless of the
		// accumulated value.
		got, err := CorrectionSum(TypeBlackmanHarris7Term, tableLength, 0)
		if err != nil {
			t.Fatalf("CorrectionSum: %v", err)
		}

		_, want := sevenTermTable()
		if !almostEqual(got, want, 1e-12) {
			t.Fatalf("got %v, want table sum %v", got, want)
		}
	})

	t.Run("seven-term accumulated", func(t *testing.T) {
		got, err := CorrectionSum(TypeBlackmanHarris7Term, 1024, 277.25)
		if err != nil {
			t.Fatalf("CorrectionSum: %v", err)
		}

		if got != 277.25 {
			t.Fatalf("got %v, want accumulated 277.25", got)
		}
	})

	t.Run("seven-term non-positive", func(t *testing.T) {
		if _, err := CorrectionSum(TypeBlackmanHarris7Term, 1024, 0); !errors.Is(err, ErrNonPositiveSum) {
			t.Fatalf("expected ErrNonPositiveSum, got %v", err)
		}
	})

	t.Run("rectangular", func(t *testing.T) {
		got, err := CorrectionSum(TypeRectangular, 2048, -1)
		if err != nil {
			t.Fatalf("CorrectionSum: %v", err)
		}

		if got != 2048 {
			t.Fatalf("got %v, want 2048", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := CorrectionSum(Type(99), 64, 64); !errors.Is(err, ErrUnknownType) {
			t.Fatalf("expected ErrUnknownType, got %v", err)
		}
	})
}

func TestFillLengthMismatch(t *testing.T) {
	providers := []Provider{
		&tableProvider{n: 64},
		&synthesisProvider{n: 64},
		&rectangularProvider{n: 64},
	}

	for _, p := range providers {
		if _, err := p.Fill(make([]float64, 63)); !errors.Is(err, ErrMismatchedLength) {
			t.Fatalf("%T: expected ErrMismatchedLength, got %v", p, err)
		}
	}
}

func TestApplyTermsInPlace(t *testing.T) {
	samples := []float64{1, 2, 3, 4}
	terms := []float64{2, 2, 2, 2}

	if err := ApplyTermsInPlace(samples, terms); err != nil {
		t.Fatalf("ApplyTermsInPlace: %v", err)
	}

	want := []float64{2, 4, 6, 8}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("samples[%d]=%v, want %v", i, samples[i], want[i])
		}
	}

	if err := ApplyTermsInPlace(samples, terms[:3]); !errors.Is(err, ErrMismatchedLength) {
		t.Fatalf("expected ErrMismatchedLength, got %v", err)
	}
}

func TestNewProviderValidation(t *testing.T) {
	if _, err := NewProvider(TypeBlackmanHarris7Term, 1); err == nil {
		t.Fatal("expected error for sample count 1")
	}

	if _, err := NewProvider(Type(99), 64); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
