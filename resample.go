package particlefilter

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ResampleMultinomial draws len(s) particles with replacement, each picked with
// probability proportional to its weight. Picked poses are copied with weight 1.
// A set with no positive total weight resamples to an empty set.
func (s ParticleSet) ResampleMultinomial(rng RandomSource) ParticleSet {
	if len(s) == 0 {
		return ParticleSet{}
	}

	cdf := floats.CumSum(make([]float64, len(s)), s.Weights())
	total := cdf[len(cdf)-1]
	if total <= 0 {
		return ParticleSet{}
	}

	out := make(ParticleSet, len(s))
	for i := range out {
		r := rng.Uniform(0, total)
		// first index whose cumulative weight reaches r
		idx := sort.SearchFloat64s(cdf, r)
		if idx >= len(s) {
			idx = len(s) - 1
		}
		out[i] = Particle{Pose: s[idx].Pose, Weight: 1.0}
	}
	return out
}
