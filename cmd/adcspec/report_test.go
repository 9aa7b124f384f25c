package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/analogdevicesinc/precision-converters-library/measure/spectral"
)

func sampleReport() analysisReport {
	m := spectral.Measurements{}
	m.Harmonics[0] = spectral.Harmonic{Bin: 100, Magnitude_dBFS: -0.915}
	m.Harmonics[1] = spectral.Harmonic{Bin: 200, Magnitude_dBFS: -110.25}
	m.THD_dB = -101.5
	m.SNR_dB = 95.25
	m.SINAD_dB = 94.75
	m.ENOB = 15.45
	m.DR_dB = 98.125
	m.SFDR_dBc = -100.5
	m.SFDR_dBFS = -101.415
	m.RMSNoiseVolts = 12.345e-6
	m.AverageBinNoise_dB = -155.75
	m.PeakSpuriousBin = 357
	m.PeakSpurious_dB = 112.5
	m.DCVolts = 0.125
	m.DCLSB = 33768

	return analysisReport{
		File:          "cap.wav",
		Device:        "ad7606",
		Samples:       2048,
		SampleRate:    1000000,
		Window:        "rectangular",
		BinWidth:      488.28125,
		FundamentalHz: 48828.125,
		Measurements:  m,
	}
}

func TestWriteTextReport(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTextReport(&buf, sampleReport()); err != nil {
		t.Fatalf("writeTextReport: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Capture:",
		"cap.wav",
		"Fund Frequency:",
		"48828.125 Hz",
		"Fund Power:",
		"-0.915 dBFS",
		"THD:",
		"-101.500 dB",
		"SNR:",
		"95.250 dB",
		"SINAD:",
		"94.750 dB",
		"ENOB:",
		"15.450 bits",
		"DR:",
		"98.125 dB",
		"RMS Noise:",
		"12.345 uV",
		"HD2",
		"-110.250",
		"33768 LSB",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJSONReport(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSONReport(&buf, sampleReport()); err != nil {
		t.Fatalf("writeJSONReport: %v", err)
	}

	var got analysisReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.File != "cap.wav" {
		t.Fatalf("file = %q, want cap.wav", got.File)
	}
	if got.BinWidth != 488.28125 {
		t.Fatalf("bin width = %g, want 488.28125", got.BinWidth)
	}
	if got.Measurements.THD_dB != -101.5 {
		t.Fatalf("thd = %g, want -101.5", got.Measurements.THD_dB)
	}
	if got.Measurements.Harmonics[0].Bin != 100 {
		t.Fatalf("fundamental bin = %d, want 100", got.Measurements.Harmonics[0].Bin)
	}
}

func TestLargestPowerOfTwo(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 1},
		{2, 2},
		{3, 2},
		{64, 64},
		{65, 64},
		{4096, 4096},
		{5000, 4096},
	}
	for _, c := range cases {
		if got := largestPowerOfTwo(c.in); got != c.want {
			t.Fatalf("largestPowerOfTwo(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseHarmonicLevels(t *testing.T) {
	levels, err := parseHarmonicLevels("")
	if err != nil || levels != nil {
		t.Fatalf("empty: levels = %v, err = %v", levels, err)
	}

	levels, err = parseHarmonicLevels("0.01, 0.002")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(levels) != 2 || levels[0] != 0.01 || levels[1] != 0.002 {
		t.Fatalf("levels = %v, want [0.01 0.002]", levels)
	}

	if _, err := parseHarmonicLevels("0.01,oops"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewToneSource(t *testing.T) {
	prof := testProfile()

	clean := newToneSource(prof, prof.SampleRate, 256, 10, 0.5, 0)
	a, err := clean()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	b, err := clean()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(a) != 256 {
		t.Fatalf("length = %d, want 256", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noiseless source not repeatable at %d: %d != %d", i, a[i], b[i])
		}
	}

	noisy := newToneSource(prof, prof.SampleRate, 256, 10, 0.5, 0.01)
	a, err = noisy()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	b, err = noisy()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("noisy source produced identical consecutive blocks")
	}
}
