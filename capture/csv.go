package capture

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadCSV loads a capture block from a text file with one decimal code per
// line. Blank lines and lines starting with '#' are skipped. CSV files
// carry no acquisition metadata, so the caller supplies the sample rate.
func ReadCSV(path string, sampleRate float64) (Block, error) {
	if sampleRate <= 0 {
		return Block{}, fmt.Errorf("%w: %g", ErrBadSampleRate, sampleRate)
	}

	f, err := os.Open(path)
	if err != nil {
		return Block{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var codes []int32
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Block{}, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, int32(v))
	}
	if err := sc.Err(); err != nil {
		return Block{}, fmt.Errorf("read csv: %w", err)
	}
	if len(codes) == 0 {
		return Block{}, ErrNoSamples
	}

	return Block{Codes: codes, SampleRate: sampleRate}, nil
}

// WriteCSV stores the block's codes as decimal text, one per line. The
// sample rate is not recorded.
func WriteCSV(path string, b Block) error {
	if len(b.Codes) == 0 {
		return ErrNoSamples
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, c := range b.Codes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			_ = f.Close()
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}

	return f.Close()
}
