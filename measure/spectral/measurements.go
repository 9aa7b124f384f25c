package spectral

// Harmonic holds one spectral peak: the fundamental or one of its folded
// harmonics.
type Harmonic struct {
	// Bin is the peak's bin index in the observable half spectrum, after
	// Nyquist-zone folding and +/-3-bin refinement.
	Bin int
	// Magnitude_dBFS is the peak bin's level.
	Magnitude_dBFS float64 //nolint:revive
	// Power is the leakage-integrated peak-equivalent amplitude: the root
	// sum square over the peak's spread window, rescaled from RMS.
	Power float64
}

// Measurements is one complete measurement set, overwritten by each
// Perform call. Field names follow converter data-sheet conventions.
//
//nolint:revive
type Measurements struct {
	// Harmonics holds the fundamental at index 0 and harmonic orders 2
	// through 6 at indices 1 through 5.
	Harmonics [6]Harmonic

	// FundamentalVolts is the fundamental amplitude in peak-to-peak volts.
	FundamentalVolts float64

	THD_dB    float64
	SNR_dB    float64
	DR_dB     float64
	SINAD_dB  float64
	ENOB      float64
	SFDR_dBc  float64
	SFDR_dBFS float64

	// PeakSpurious_dB keeps the reference tooling's inverted full-scale
	// convention: 20*log10(1/amplitude), so larger values mean smaller
	// spurs.
	PeakSpuriousBin    int
	PeakSpurious_dB    float64
	AverageBinNoise_dB float64

	RMSNoiseVolts        float64
	TransitionNoiseVolts float64
	TransitionNoiseLSB   uint32

	MaxVolts        float64
	MinVolts        float64
	PeakToPeakVolts float64
	DCVolts         float64

	// LSB amplitudes are zero-scale rebased codes.
	MaxLSB        int32
	MinLSB        int32
	PeakToPeakLSB int32
	DCLSB         int32
}
