package particlefilter

import "go.uber.org/zap"

// Config describes the ensemble a ParticleFilter starts from and the noise
// it assumes for motion and sensing.
type Config struct {
	NumParticles int
	MinPose      Pose
	MaxPose      Pose
	Noise        OdometryNoise
	SensorSigma  float64
}

// Option customizes a ParticleFilter.
type Option func(*ParticleFilter)

// WithLogger sets the logger used for per-step diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(pf *ParticleFilter) {
		if l != nil {
			pf.log = l
		}
	}
}

// ParticleFilter runs Monte Carlo localization over a particle set it owns
// exclusively between steps.
type ParticleFilter struct {
	cfg       Config
	rng       RandomSource
	particles ParticleSet
	estimate  Pose
	iteration int
	log       *zap.Logger
}

// New creates a particle filter with particles spread uniformly over the
// configured pose range.
func New(cfg Config, rng RandomSource, opts ...Option) *ParticleFilter {
	pf := &ParticleFilter{
		cfg: cfg,
		rng: rng,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(pf)
	}

	// creating initial random samples
	pf.particles = InitializeUniform(cfg.NumParticles, cfg.MinPose, cfg.MaxPose, rng)
	pf.estimate = pf.particles.Estimate()

	pf.log.Debug("particle filter initialized",
		zap.Int("particles", len(pf.particles)),
		zap.Float64("sensor_sigma", cfg.SensorSigma))
	return pf
}

// Move propagates the particles through the odometry model.
func (pf *ParticleFilter) Move(u OdometryDelta) {
	pf.particles.MoveOdometry(u, pf.cfg.Noise, pf.rng)
}

// Move1D shifts the particles along x, using the translational noise.
func (pf *ParticleFilter) Move1D(delta float64) {
	pf.particles.Move1D(delta, pf.cfg.Noise.TransStd, pf.rng)
}

// CalculateWeights folds the reading into the particle weights and normalizes them.
func (pf *ParticleFilter) CalculateWeights(r Reading) {
	pf.particles.UpdateWeights(r)
	pf.particles.Normalize()
}

// Resample replaces the particle set with a multinomial resample of itself
// and refreshes the estimate.
func (pf *ParticleFilter) Resample() Pose {
	pf.iteration++
	before := len(pf.particles)
	pf.particles = pf.particles.ResampleMultinomial(pf.rng)
	pf.estimate = pf.particles.Estimate()

	if before > 0 && len(pf.particles) == 0 {
		pf.log.Warn("particle weights collapsed, set is empty",
			zap.Int("iteration", pf.iteration),
			zap.Int("particles_before", before))
	}
	return pf.estimate
}

// Step runs one full cycle: motion, weighting, normalization, resampling and
// estimation. It returns the new estimate.
func (pf *ParticleFilter) Step(u OdometryDelta, r Reading) Pose {
	pf.Move(u)
	pf.CalculateWeights(r)
	est := pf.Resample()

	pf.log.Debug("filter step",
		zap.Int("iteration", pf.iteration),
		zap.Float64("est_x", est.X),
		zap.Float64("est_y", est.Y),
		zap.Float64("est_theta", est.Theta))
	return est
}

// StepLandmarks is Step with one measured range per landmark, scored with the
// configured sensor sigma.
func (pf *ParticleFilter) StepLandmarks(u OdometryDelta, landmarks []Landmark, ranges []float64) Pose {
	return pf.Step(u, LandmarkReadings{Ranges: PairRanges(landmarks, ranges), Sigma: pf.cfg.SensorSigma})
}

// Step1D is Step for the scalar variant.
func (pf *ParticleFilter) Step1D(delta, measurement float64) Pose {
	pf.Move1D(delta)
	pf.CalculateWeights(PointReading{Value: measurement, Sigma: pf.cfg.SensorSigma})
	return pf.Resample()
}

// Estimate returns the pose computed after the last resample.
func (pf *ParticleFilter) Estimate() Pose {
	return pf.estimate
}

// Particles returns a copy of the current particle set.
func (pf *ParticleFilter) Particles() ParticleSet {
	return pf.particles.Clone()
}

// Len returns the current number of particles.
func (pf *ParticleFilter) Len() int {
	return len(pf.particles)
}

// Iteration returns how many resamples have run.
func (pf *ParticleFilter) Iteration() int {
	return pf.iteration
}
