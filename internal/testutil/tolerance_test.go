package testutil

import "testing"

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t,
		[]float64{1, 2, 3},
		[]float64{1, 2 + 1e-13, 3},
		1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, 3e300})
}
