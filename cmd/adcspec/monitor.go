package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/analogdevicesinc/precision-converters-library/internal/stream"
	"github.com/analogdevicesinc/precision-converters-library/measure/spectral"
)

var (
	monitorListen   string
	monitorInterval time.Duration
	monitorCapture  string
	monitorSamples  int
	monitorBin      int
	monitorAmp      float64
	monitorNoise    float64
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Serve live measurement frames over websocket",
	Long: `monitor runs the measurement chain on a cadence and broadcasts each
result as one JSON frame on ws://<listen>/stream. A frame carries the dB
spectrum, the full measurement set, the bin width and a sequence number.

Without --capture it synthesizes a fresh noisy test tone per cycle, which
makes it a self-contained demo source; with --capture it replays one file.
Listen address and cadence also come from the config file or environment
(monitor.listen, monitor.interval).`,
	Args: cobra.NoArgs,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)

	f := monitorCmd.Flags()
	f.StringVar(&monitorListen, "listen", ":8765", "listen address")
	f.DurationVar(&monitorInterval, "interval", 500*time.Millisecond, "measurement cadence")
	f.StringVar(&monitorCapture, "capture", "", "capture file to replay (default: synthesized tone)")
	f.IntVar(&monitorSamples, "samples", 4096, "capture length per cycle, power of two")
	f.IntVar(&monitorBin, "bin", 101, "synthesized fundamental bin")
	f.Float64Var(&monitorAmp, "amplitude", 0.9, "synthesized tone amplitude, full-scale fraction")
	f.Float64Var(&monitorNoise, "noise", 1e-5, "synthesized noise peak, full-scale fraction")

	_ = viper.BindPFlag("monitor.listen", f.Lookup("listen"))
	_ = viper.BindPFlag("monitor.interval", f.Lookup("interval"))
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	prof, err := loadProfile()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	listen := viper.GetString("monitor.listen")
	interval := viper.GetDuration("monitor.interval")
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	rate := prof.SampleRate
	samples := monitorSamples
	var source func() ([]int32, error)

	if monitorCapture != "" {
		block, err := readCaptureFile(monitorCapture, prof.SampleRate)
		if err != nil {
			return err
		}
		rate = block.SampleRate
		if n := largestPowerOfTwo(block.Len()); n < samples {
			samples = n
		}
		source = newReplaySource(block.Codes[:samples])
	} else {
		source = newToneSource(prof, rate, samples, monitorBin, monitorAmp, monitorNoise)
	}

	cfg, err := prof.EngineConfig(samples)
	if err != nil {
		return err
	}
	cfg.SampleRate = rate

	proc, m, err := spectral.New(cfg)
	if err != nil {
		return err
	}

	hub := stream.NewHub(logger)
	mux := http.NewServeMux()
	mux.Handle("/stream", hub)
	server := &http.Server{Addr: listen, Handler: mux}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("monitor listening",
			zap.String("addr", listen),
			zap.Duration("interval", interval),
			zap.Int("samples", samples))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = hub.Close()
			err := server.Shutdown(shutdownCtx)
			logger.Info("monitor stopped")
			return err

		case err := <-errc:
			_ = hub.Close()
			return err

		case <-ticker.C:
			codes, err := source()
			if err != nil {
				logger.Error("block source failed", zap.Error(err))
				continue
			}
			if err := proc.Perform(codes, m); err != nil {
				logger.Warn("measurement failed", zap.Error(err))
				continue
			}

			// Broadcast serializes before returning, so the engine's
			// spectrum view is safe to hand over uncopied.
			hub.Broadcast(stream.Frame{
				Time:         time.Now(),
				BinWidth:     proc.BinWidth(),
				SpectrumDB:   proc.SpectrumDB(),
				Measurements: *m,
			})
		}
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newReplaySource hands out a fresh copy per call: the engine removes DC
// from its input in place, so the original block must stay untouched.
func newReplaySource(base []int32) func() ([]int32, error) {
	return func() ([]int32, error) {
		codes := make([]int32, len(base))
		copy(codes, base)
		return codes, nil
	}
}
