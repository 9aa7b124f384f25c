package spectrum

import (
	"math"
	"testing"
)

func TestBinMagnitudeSine(t *testing.T) {
	const (
		n   = 64
		bin = 8
	)

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * bin * float64(i) / n)
	}

	// A unit sine at an exact bin carries magnitude n/2 there.
	got, err := BinMagnitude(samples, bin)
	if err != nil {
		t.Fatalf("BinMagnitude: %v", err)
	}

	if math.Abs(got-n/2) > 1e-9 {
		t.Fatalf("magnitude=%v, want %v", got, float64(n)/2)
	}

	// A neighboring bin of an exactly periodic tone is empty.
	off, err := BinMagnitude(samples, bin+4)
	if err != nil {
		t.Fatalf("BinMagnitude: %v", err)
	}

	if off > 1e-9 {
		t.Fatalf("off-bin magnitude=%v, want 0", off)
	}
}

func TestBinPowerDC(t *testing.T) {
	samples := make([]float64, 64)
	for i := range samples {
		samples[i] = 0.5
	}

	got, err := BinPower(samples, 0)
	if err != nil {
		t.Fatalf("BinPower: %v", err)
	}

	want := math.Pow(64*0.5, 2)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("power=%v, want %v", got, want)
	}
}

func TestBinPowerValidation(t *testing.T) {
	if _, err := BinPower(nil, 0); err == nil {
		t.Fatal("expected error for empty block")
	}

	samples := make([]float64, 16)

	if _, err := BinPower(samples, -1); err == nil {
		t.Fatal("expected error for negative bin")
	}

	if _, err := BinPower(samples, 9); err == nil {
		t.Fatal("expected error for bin beyond Nyquist")
	}
}
