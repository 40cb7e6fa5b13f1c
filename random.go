package particlefilter

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource supplies the independent variates every stochastic step consumes.
// A single source should be threaded through a whole run so a fixed seed
// reproduces the same particle sets.
type RandomSource interface {
	Uniform(min, max float64) float64
	Normal(mean, stddev float64) float64
}

var _ RandomSource = (*Random)(nil)

// Random is a seeded RandomSource drawing from gonum distributions.
type Random struct {
	src rand.Source
}

// NewRandom creates a Random whose sequence is fully determined by seed.
func NewRandom(seed uint64) *Random {
	return &Random{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

func (r *Random) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return distuv.Uniform{Min: min, Max: max, Src: r.src}.Rand()
}

func (r *Random) Normal(mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: r.src}.Rand()
}

// UniformIndex returns an index in [0, n), or 0 when n is not positive.
func (r *Random) UniformIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.New(r.src).IntN(n)
}
