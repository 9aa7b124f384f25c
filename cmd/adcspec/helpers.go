package main

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/analogdevicesinc/precision-converters-library/capture"
	"github.com/analogdevicesinc/precision-converters-library/device"
)

func loadProfile() (device.Profile, error) {
	if profilePath == "" {
		return device.Profile{}, errors.New("--profile is required")
	}
	return device.Load(profilePath)
}

// readCaptureFile loads a capture by extension: WAV or, for anything else,
// CSV. rateHint supplies the sample rate for CSV files and overrides the
// WAV header when positive.
func readCaptureFile(path string, rateHint float64) (capture.Block, error) {
	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		b, err := capture.ReadWAV(path)
		if err != nil {
			return capture.Block{}, err
		}
		if rateHint > 0 {
			b.SampleRate = rateHint
		}
		return b, nil
	}
	return capture.ReadCSV(path, rateHint)
}

func writeCaptureFile(path string, b capture.Block) error {
	if strings.ToLower(filepath.Ext(path)) == ".wav" {
		return capture.WriteWAV(path, b)
	}
	return capture.WriteCSV(path, b)
}

func largestPowerOfTwo(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
