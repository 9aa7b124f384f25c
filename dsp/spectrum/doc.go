// Package spectrum provides FFT-adjacent helpers for converter spectra.
//
// The package intentionally does not implement the FFT itself. It operates
// on complex bins produced by external FFT backends and provides magnitude
// extraction, Nyquist-zone folding, and single-bin Goertzel evaluation for
// cross-checking transform output.
package spectrum
