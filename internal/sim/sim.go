// Package sim drives the particle filter through a synthetic scenario. It owns
// the ground truth and the landmark map and hands per-step frames to observers
// such as the CSV log and the frame renderer.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pf "github.com/jhoydich/mcl"
	"github.com/jhoydich/mcl/internal/config"
)

// Frame is a read-only snapshot of one completed step.
type Frame struct {
	Step         int
	Time         float64
	Truth        pf.Pose
	Measurements []float64
	Estimate     pf.Pose
	Particles    pf.ParticleSet
	Landmarks    []pf.Landmark
}

// Observer consumes frames. Observers must not modify the frame's particles.
type Observer interface {
	Observe(Frame) error
}

// Summary reports how a run went.
type Summary struct {
	RunID         string
	Steps         int
	FinalTruth    pf.Pose
	FinalEstimate pf.Pose
	MeanError     float64
	Collapsed     bool
}

// Simulator runs one scenario. It is not safe for concurrent use.
type Simulator struct {
	cfg       *config.Config
	rng       *pf.Random
	filter    *pf.ParticleFilter
	truth     pf.Pose
	landmarks []pf.Landmark
	observers []Observer
	runID     string
	log       *zap.Logger
}

// New prepares a simulator for cfg. The same seed reproduces the same run.
func New(cfg *config.Config, log *zap.Logger, observers ...Observer) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID), zap.String("mode", cfg.Mode))

	rng := pf.NewRandom(cfg.Seed)
	return &Simulator{
		cfg:       cfg,
		rng:       rng,
		filter:    pf.New(cfg.FilterConfig(), rng, pf.WithLogger(log)),
		truth:     cfg.Truth.Pose(),
		landmarks: cfg.LandmarkMap(),
		observers: observers,
		runID:     runID,
		log:       log,
	}, nil
}

// AddObserver registers an observer for every subsequent frame.
func (s *Simulator) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// RunID identifies this run in logs and output paths.
func (s *Simulator) RunID() string {
	return s.runID
}

// Run executes every configured step, stopping early if ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (Summary, error) {
	sum := Summary{RunID: s.runID}
	var errTotal float64

	s.log.Info("starting run",
		zap.Int("particles", s.cfg.Particles),
		zap.Int("steps", s.cfg.Steps),
		zap.Uint64("seed", s.cfg.Seed))

	for step := 0; step < s.cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		var meas []float64
		if s.cfg.Mode == config.Mode1D {
			meas = s.step1D()
		} else {
			meas = s.stepLandmarks()
		}
		est := s.filter.Resample()

		sum.Steps = step + 1
		sum.FinalTruth = s.truth
		sum.FinalEstimate = est
		errTotal += math.Hypot(est.X-s.truth.X, est.Y-s.truth.Y)

		if s.filter.Len() == 0 {
			sum.Collapsed = true
		}

		frame := Frame{
			Step:         step,
			Time:         s.cfg.Dt * float64(step),
			Truth:        s.truth,
			Measurements: meas,
			Estimate:     est,
			Particles:    s.filter.Particles(),
			Landmarks:    s.landmarks,
		}
		if err := s.notify(frame); err != nil {
			return sum, err
		}
	}

	if sum.Steps > 0 {
		sum.MeanError = errTotal / float64(sum.Steps)
	}
	s.log.Info("run complete",
		zap.Int("steps", sum.Steps),
		zap.Float64("mean_error", sum.MeanError),
		zap.Bool("collapsed", sum.Collapsed))
	return sum, nil
}

// stepLandmarks moves the particles and the truth, then weights the particles
// against one noisy range per landmark.
func (s *Simulator) stepLandmarks() []float64 {
	u := s.cfg.OdometryDelta()
	s.filter.Move(u)

	if next := s.truth.Advance(u); s.inWorld(next) {
		s.truth = next
	}

	meas := make([]float64, len(s.landmarks))
	for i, lm := range s.landmarks {
		meas[i] = s.truth.Distance(lm) + s.rng.Normal(0, s.cfg.Noise.SensorStd)
	}

	s.filter.CalculateWeights(pf.LandmarkReadings{
		Ranges: pf.PairRanges(s.landmarks, meas),
		Sigma:  s.cfg.Noise.SensorStd,
	})
	return meas
}

// step1D moves along x and weights against a noisy reading of the true x.
func (s *Simulator) step1D() []float64 {
	delta := s.cfg.Delta1D
	s.filter.Move1D(delta)

	next := s.truth
	next.X += delta
	if s.inWorld(next) {
		s.truth = next
	}

	z := s.truth.X + s.rng.Normal(0, s.cfg.Noise.SensorStd)
	s.filter.CalculateWeights(pf.PointReading{Value: z, Sigma: s.cfg.Noise.SensorStd})
	return []float64{z}
}

func (s *Simulator) inWorld(p pf.Pose) bool {
	w := s.cfg.World
	return p.X >= w.Min && p.X <= w.Max && p.Y >= w.Min && p.Y <= w.Max
}

func (s *Simulator) notify(f Frame) error {
	var errs []error
	for _, o := range s.observers {
		if err := o.Observe(f); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("step %d: %w", f.Step, err)
	}
	return nil
}
