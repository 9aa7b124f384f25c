// Command adcspec measures data-converter performance from captured code
// blocks: a windowed FFT drives THD, SNR, SINAD, ENOB, SFDR, dynamic
// range, noise floor and DC statistics, the way converter data sheets
// quote them.
//
// Usage:
//
//	adcspec analyze --profile ad4170.yaml capture.wav
//	adcspec synth --profile ad4170.yaml --bin 101 --amplitude 0.9 tone.wav
//	adcspec window --size 4096
//	adcspec monitor --profile ad4170.yaml --listen :8765
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile  string
	profilePath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "adcspec",
	Short: "Spectral performance measurements for data converters",
	Long: `adcspec runs the spectral (FFT) measurement chain of a converter
evaluation setup on captured sample blocks: windowing, FFT, harmonic and
noise analysis, and the derived data-sheet metrics (THD, SNR, SINAD, ENOB,
SFDR, DR, noise floor, DC statistics).

Captures are WAV files (codes as integer PCM, rate from the header) or CSV
code lists. The converter under test is described by a YAML profile.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default adcspec.yaml in . or $HOME/.config/adcspec)")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "",
		"device profile YAML")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
}

// initConfig wires the optional config file and ADCSPEC_* environment
// variables into viper; flags keep precedence.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "adcspec"))
		}
		viper.SetConfigName("adcspec")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ADCSPEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "using config file: %s\n", viper.ConfigFileUsed())
	}
}
