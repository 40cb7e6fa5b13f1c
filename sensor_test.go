package particlefilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussianLikelihood(t *testing.T) {
	assert.InDelta(t, 0.3989422804, GaussianLikelihood(0, 0, 1), 1e-10)
	assert.InDelta(t, 0.3989422804, GaussianLikelihood(7.5, 7.5, 1), 1e-10)
	assert.InDelta(t, 0.3989422804/2, GaussianLikelihood(3, 3, 2), 1e-10)
	assert.InDelta(t, math.Exp(-0.5)/math.Sqrt(2*math.Pi), GaussianLikelihood(1, 0, 1), 1e-12)
	assert.Equal(t, GaussianLikelihood(1, 0, 1), GaussianLikelihood(-1, 0, 1))

	assert.Equal(t, 0.0, GaussianLikelihood(0, 0, 0))
	assert.Equal(t, 0.0, GaussianLikelihood(1, 0, 0))
}

func TestUpdateWeights1D(t *testing.T) {
	set := setAt(0, 1, 2, 3, 4)
	set.UpdateWeights1D(2.0, 1.0)
	set.Normalize()

	require.InDelta(t, 1.0, set.TotalWeight(), 1e-9)
	for i, p := range set {
		if i == 2 {
			continue
		}
		assert.Greater(t, set[2].Weight, p.Weight, "particle at x=%v", p.Pose.X)
	}
	assert.InDelta(t, set[1].Weight, set[3].Weight, 1e-12)
}

func TestUpdateWeightsMultiplies(t *testing.T) {
	set := setAt(0)
	set[0].Weight = 0.5
	set.UpdateWeights(PointReading{Value: 0, Sigma: 1})
	assert.InDelta(t, 0.5*0.3989422804, set[0].Weight, 1e-10)

	set.UpdateWeights(PointReading{Value: 0, Sigma: 0})
	assert.Equal(t, 0.0, set[0].Weight)
}

func TestUpdateWeightsLandmarks(t *testing.T) {
	landmarks := []Landmark{{X: 2, Y: 4}, {X: 13, Y: 4}, {X: 7.5, Y: 13}}
	truth := Pose{X: 7.5, Y: 4}
	ranges := make([]float64, len(landmarks))
	for i, lm := range landmarks {
		ranges[i] = truth.Distance(lm)
	}

	set := ParticleSet{
		{Pose: truth, Weight: 1},
		{Pose: Pose{X: 8, Y: 5}, Weight: 1},
		{Pose: Pose{X: 1, Y: 12}, Weight: 1},
	}
	set.UpdateWeightsLandmarks(landmarks, ranges, 0.4)

	assert.Greater(t, set[0].Weight, set[1].Weight)
	assert.Greater(t, set[1].Weight, set[2].Weight)

	want := 1.0
	for i, lm := range landmarks {
		want *= GaussianLikelihood(ranges[i], set[1].Pose.Distance(lm), 0.4)
	}
	assert.InDelta(t, want, set[1].Weight, 1e-15)
}

func TestUpdateWeightsLandmarksMismatchedLengths(t *testing.T) {
	landmarks := []Landmark{{X: 3, Y: 0}, {X: 0, Y: 100}}
	set := ParticleSet{{Pose: Pose{}, Weight: 1}}
	set.UpdateWeightsLandmarks(landmarks, []float64{3}, 1)
	assert.InDelta(t, 0.3989422804, set[0].Weight, 1e-10)

	assert.Len(t, PairRanges(landmarks, []float64{1, 2, 3}), 2)
	assert.Empty(t, PairRanges(nil, []float64{1}))
}

func TestUpdateWeightsEmpty(t *testing.T) {
	var empty ParticleSet
	assert.NotPanics(t, func() {
		empty.UpdateWeights1D(1, 1)
		empty.UpdateWeightsLandmarks([]Landmark{{}}, []float64{1}, 1)
	})

	set := setAt(1)
	set.UpdateWeights(nil)
	assert.Equal(t, 1.0, set[0].Weight)
}
