package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/analogdevicesinc/precision-converters-library/measure/spectral"
)

// analysisReport is the analyze subcommand's output: acquisition context
// plus the full measurement set.
type analysisReport struct {
	File          string  `json:"file"`
	Device        string  `json:"device,omitempty"`
	Samples       int     `json:"samples"`
	SampleRate    float64 `json:"sample_rate_hz"`
	Window        string  `json:"window"`
	BinWidth      float64 `json:"bin_width_hz"`
	FundamentalHz float64 `json:"fundamental_hz"`

	Measurements spectral.Measurements `json:"measurements"`
}

func writeJSONReport(w io.Writer, r analysisReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// writeTextReport prints the measurement set with the labels and formats
// of the evaluation GUI: "%.3f dB" metrics, fundamental frequency in Hz,
// RMS noise in microvolts.
func writeTextReport(w io.Writer, r analysisReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	m := r.Measurements

	fmt.Fprintf(tw, "Capture:\t%s\n", r.File)
	if r.Device != "" {
		fmt.Fprintf(tw, "Device:\t%s\n", r.Device)
	}
	fmt.Fprintf(tw, "Samples:\t%d\n", r.Samples)
	fmt.Fprintf(tw, "Sample Rate:\t%.3f Hz\n", r.SampleRate)
	fmt.Fprintf(tw, "Window:\t%s\n", r.Window)
	fmt.Fprintf(tw, "Bin Width:\t%.3f Hz\n", r.BinWidth)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Fund Frequency:\t%.3f Hz\n", r.FundamentalHz)
	fmt.Fprintf(tw, "Fund Power:\t%.3f dBFS\n", m.Harmonics[0].Magnitude_dBFS)
	fmt.Fprintf(tw, "THD:\t%.3f dB\n", m.THD_dB)
	fmt.Fprintf(tw, "SNR:\t%.3f dB\n", m.SNR_dB)
	fmt.Fprintf(tw, "SINAD:\t%.3f dB\n", m.SINAD_dB)
	fmt.Fprintf(tw, "ENOB:\t%.3f bits\n", m.ENOB)
	fmt.Fprintf(tw, "DR:\t%.3f dB\n", m.DR_dB)
	fmt.Fprintf(tw, "SFDR:\t%.3f dBc / %.3f dBFS\n", m.SFDR_dBc, m.SFDR_dBFS)
	fmt.Fprintf(tw, "RMS Noise:\t%.3f uV\n", m.RMSNoiseVolts*1e6)
	fmt.Fprintf(tw, "Avg Bin Noise:\t%.3f dBFS\n", m.AverageBinNoise_dB)
	fmt.Fprintf(tw, "Peak Spurious:\t%.3f dB (bin %d)\n", m.PeakSpurious_dB, m.PeakSpuriousBin)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Harmonic\tBin\tdBFS\n")
	for i, h := range m.Harmonics {
		label := "Fund"
		if i > 0 {
			label = fmt.Sprintf("HD%d", i+1)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3f\n", label, h.Bin, h.Magnitude_dBFS)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "DC:\t%.6f V\t%d LSB\n", m.DCVolts, m.DCLSB)
	fmt.Fprintf(tw, "Min:\t%.6f V\t%d LSB\n", m.MinVolts, m.MinLSB)
	fmt.Fprintf(tw, "Max:\t%.6f V\t%d LSB\n", m.MaxVolts, m.MaxLSB)
	fmt.Fprintf(tw, "Peak-Peak:\t%.6f V\t%d LSB\n", m.PeakToPeakVolts, m.PeakToPeakLSB)
	fmt.Fprintf(tw, "Transition Noise:\t%.6f V\t%d LSB\n", m.TransitionNoiseVolts, m.TransitionNoiseLSB)

	return tw.Flush()
}
