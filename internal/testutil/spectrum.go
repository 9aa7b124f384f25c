package testutil

import "gonum.org/v1/gonum/dsp/fourier"

// ReferenceSpectrum computes the unnormalized half spectrum of real
// samples with gonum's FFT. Tests use it as an independent cross-check of
// the engine's transform path; it returns len(samples)/2+1 coefficients.
func ReferenceSpectrum(samples []float64) []complex128 {
	fft := fourier.NewFFT(len(samples))
	return fft.Coefficients(nil, samples)
}
