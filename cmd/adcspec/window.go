package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/analogdevicesinc/precision-converters-library/dsp/window"
)

var windowSize int

var windowCmd = &cobra.Command{
	Use:   "window [name ...]",
	Short: "Print spectral properties of the analysis windows",
	Long: `window prints the diagnostics that matter when choosing an analysis
window: coherent gain, equivalent noise bandwidth, 3 dB main lobe width,
worst sidelobe, first null position and scallop loss.

Without arguments it covers both supported windows.`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().IntVar(&windowSize, "size", 4096, "window length in samples")
}

func runWindow(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = []string{
			window.TypeBlackmanHarris7Term.String(),
			window.TypeRectangular.String(),
		}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n")

	for _, name := range names {
		t, err := window.ParseType(name)
		if err != nil {
			return err
		}

		terms, err := window.Terms(t, windowSize)
		if err != nil {
			return err
		}
		a := window.Analyze(terms)

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			t.String(),
			windowSize,
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		)
	}

	return tw.Flush()
}
