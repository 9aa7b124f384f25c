// Package spectral measures data-converter performance from captured code
// blocks.
//
// A Processor ingests one block of raw ADC codes, characterizes its DC
// content, removes the offset, windows and transforms the block, and
// derives the standard converter metrics from the spectrum: THD, SNR,
// SINAD, ENOB, SFDR, dynamic range, noise floor, and waveform statistics.
// Folding arithmetic places harmonics that alias across Nyquist zones back
// into the observable half spectrum.
//
// The numeric structure follows converter bench practice: search floors at
// -200 dBFS, leakage integration over +/-10 bins around the fundamental
// and +/-3 bins around each harmonic, a 10-bin DC guard, and the empirical
// +4.48 dB dynamic-range correction. Order of operations and truncations
// are part of the contract; results are comparable with established
// characterization tooling down to those details.
//
// A Processor owns its FFT plan and working buffers, so repeated Perform
// calls do not allocate. It is not safe for concurrent use; run one per
// channel.
package spectral
