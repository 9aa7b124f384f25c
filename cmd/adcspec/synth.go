package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/analogdevicesinc/precision-converters-library/capture"
	"github.com/analogdevicesinc/precision-converters-library/device"
	"github.com/analogdevicesinc/precision-converters-library/dsp/signal"
)

var (
	synthSamples   int
	synthBin       int
	synthFreq      float64
	synthAmplitude float64
	synthHarmonics string
	synthNoise     float64
	synthOffset    int
	synthSeed      int64
	synthRate      float64
)

var synthCmd = &cobra.Command{
	Use:   "synth <output-file>",
	Short: "Synthesize a coherent test capture",
	Long: `synth writes a capture file containing a quantized test tone: a
coherent sine on an exact bin, optional harmonics and white noise, and an
optional DC offset in codes. The output feeds analyze or any other tool
that reads capture files.

Amplitudes are full-scale fractions. --freq snaps to the nearest coherent
bin so the tone needs no window to measure cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)

	synthCmd.Flags().IntVar(&synthSamples, "samples", 4096,
		"capture length, power of two")
	synthCmd.Flags().IntVar(&synthBin, "bin", 101,
		"fundamental bin index")
	synthCmd.Flags().Float64Var(&synthFreq, "freq", 0,
		"fundamental frequency in Hz, snapped to the nearest bin (overrides --bin)")
	synthCmd.Flags().Float64Var(&synthAmplitude, "amplitude", 0.9,
		"tone amplitude as a full-scale fraction")
	synthCmd.Flags().StringVar(&synthHarmonics, "harmonics", "",
		"harmonic amplitudes from the 2nd up, comma-separated full-scale fractions")
	synthCmd.Flags().Float64Var(&synthNoise, "noise", 0,
		"white noise peak amplitude as a full-scale fraction")
	synthCmd.Flags().IntVar(&synthOffset, "offset", 0,
		"DC offset in codes, added after quantization")
	synthCmd.Flags().Int64Var(&synthSeed, "seed", 1,
		"noise generator seed")
	synthCmd.Flags().Float64Var(&synthRate, "rate", 0,
		"sample rate override in Hz (default: profile)")
}

func runSynth(cmd *cobra.Command, args []string) error {
	prof, err := loadProfile()
	if err != nil {
		return err
	}

	if !isPowerOfTwo(synthSamples) || synthSamples < 64 {
		return fmt.Errorf("samples %d: want a power of two >= 64", synthSamples)
	}

	rate := prof.SampleRate
	if synthRate > 0 {
		rate = synthRate
	}

	bin := synthBin
	if synthFreq > 0 {
		bin = int(math.Round(synthFreq * float64(synthSamples) / rate))
	}
	if bin < 1 || bin >= synthSamples/2 {
		return fmt.Errorf("fundamental bin %d outside (0, %d)", bin, synthSamples/2)
	}

	levels, err := parseHarmonicLevels(synthHarmonics)
	if err != nil {
		return err
	}
	amplitudes := append([]float64{synthAmplitude}, levels...)

	gen := signal.NewGenerator(rate, signal.WithSeed(synthSeed))
	freq := gen.BinFrequency(bin, synthSamples)

	volts, err := gen.HarmonicSeries(freq, amplitudes, synthSamples)
	if err != nil {
		return err
	}

	if synthNoise > 0 {
		noise, err := gen.WhiteNoise(synthNoise, synthSamples)
		if err != nil {
			return err
		}
		for i := range volts {
			volts[i] += noise[i]
		}
	}

	codes, err := signal.Quantize(volts, prof.Bits)
	if err != nil {
		return err
	}

	if synthOffset != 0 {
		for i := range codes {
			codes[i] += int32(synthOffset)
		}
	}

	if err := writeCaptureFile(args[0], capture.Block{Codes: codes, SampleRate: rate}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d samples to %s (bin %d, %.3f Hz, %g FS)\n",
		synthSamples, args[0], bin, freq, synthAmplitude)
	return nil
}

func parseHarmonicLevels(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	levels := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("harmonic level %q: %w", p, err)
		}
		levels = append(levels, v)
	}
	return levels, nil
}

// newToneSource returns a block source for the monitor: each call
// synthesizes the same coherent tone with freshly seeded noise, so
// successive frames differ the way live captures do.
func newToneSource(prof device.Profile, rate float64, samples, bin int, amp, noisePeak float64) func() ([]int32, error) {
	gen := signal.NewGenerator(rate)
	freq := gen.BinFrequency(bin, samples)
	seed := int64(1)

	return func() ([]int32, error) {
		gen.SetSeed(seed)
		seed++

		volts, err := gen.Sine(freq, amp, samples)
		if err != nil {
			return nil, err
		}
		if noisePeak > 0 {
			noise, err := gen.WhiteNoise(noisePeak, samples)
			if err != nil {
				return nil, err
			}
			for i := range volts {
				volts[i] += noise[i]
			}
		}
		return signal.Quantize(volts, prof.Bits)
	}
}
