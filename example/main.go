package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/jhoydich/mcl/internal/config"
	"github.com/jhoydich/mcl/internal/logging"
	"github.com/jhoydich/mcl/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML scenario file (defaults to the built-in three-landmark scenario)")
	csvPath := flag.String("csv", "simple_mcl_log.csv", "trajectory CSV output path (empty disables)")
	framesDir := flag.String("frames", "", "directory for per-step PNG frames (empty disables)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	seed := flag.Uint64("seed", 0, "override the scenario seed (0 keeps the configured seed)")
	flag.Parse()

	if err := run(*configPath, *csvPath, *framesDir, *logLevel, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, csvPath, framesDir, logLevel string, seed uint64) error {
	log, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	var observers []sim.Observer
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", csvPath, err)
		}
		defer f.Close()

		numMeas := len(cfg.Landmarks)
		if cfg.Mode == config.Mode1D {
			numMeas = 1
		}
		observers = append(observers, sim.NewCSVLog(f, numMeas))
	}

	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}
	if framesDir != "" {
		r, err := sim.NewRenderer(filepath.Join(framesDir, s.RunID()), cfg.World.Min, cfg.World.Max)
		if err != nil {
			return err
		}
		s.AddObserver(r)
	}
	for _, o := range observers {
		s.AddObserver(o)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := s.Run(ctx)
	if err != nil {
		return fmt.Errorf("run %s: %w", sum.RunID, err)
	}

	log.Info("estimate",
		zap.Float64("truth_x", sum.FinalTruth.X),
		zap.Float64("truth_y", sum.FinalTruth.Y),
		zap.Float64("truth_theta", sum.FinalTruth.Theta),
		zap.Float64("est_x", sum.FinalEstimate.X),
		zap.Float64("est_y", sum.FinalEstimate.Y),
		zap.Float64("est_theta", sum.FinalEstimate.Theta))
	if csvPath != "" {
		fmt.Println("wrote", csvPath)
	}
	return nil
}
