package particlefilter

import "gonum.org/v1/gonum/floats"

// Particle is one weighted pose hypothesis. A zero weight is legal and marks
// a particle that the next resample will drop.
type Particle struct {
	Pose   Pose
	Weight float64
}

// ParticleSet is the ordered ensemble of particles. Order carries no meaning
// but is kept stable so seeded runs are reproducible.
type ParticleSet []Particle

// InitializeUniform draws count particles with x, y and theta sampled
// independently and uniformly between min and max. Weights start at 1.
func InitializeUniform(count int, min, max Pose, rng RandomSource) ParticleSet {
	if count <= 0 {
		return ParticleSet{}
	}

	set := make(ParticleSet, 0, count)
	for i := 0; i < count; i++ {
		pose := Pose{
			X:     rng.Uniform(min.X, max.X),
			Y:     rng.Uniform(min.Y, max.Y),
			Theta: rng.Uniform(min.Theta, max.Theta),
		}
		set = append(set, Particle{Pose: pose, Weight: 1.0})
	}
	return set
}

// Weights returns a copy of the particle weights in set order.
func (s ParticleSet) Weights() []float64 {
	w := make([]float64, len(s))
	for i := range s {
		w[i] = s[i].Weight
	}
	return w
}

// TotalWeight sums the weights of the set.
func (s ParticleSet) TotalWeight() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Sum(s.Weights())
}

// Normalize scales the weights so they sum to one. A set whose total weight is
// not positive is left untouched, so callers can still see it is degenerate.
func (s ParticleSet) Normalize() {
	sum := s.TotalWeight()
	if sum <= 0 {
		return
	}
	for i := range s {
		s[i].Weight /= sum
	}
}

// Clone returns an independent copy of the set.
func (s ParticleSet) Clone() ParticleSet {
	out := make(ParticleSet, len(s))
	copy(out, s)
	return out
}
