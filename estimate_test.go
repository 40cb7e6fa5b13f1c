package particlefilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSingleParticle(t *testing.T) {
	pose := Pose{X: 3.5, Y: -2, Theta: 2.9}
	got := ParticleSet{{Pose: pose, Weight: 1}}.Estimate()
	assert.InDelta(t, pose.X, got.X, 1e-12)
	assert.InDelta(t, pose.Y, got.Y, 1e-12)
	assert.InDelta(t, pose.Theta, got.Theta, 1e-12)
}

func TestEstimateWeightedMean(t *testing.T) {
	set := ParticleSet{
		{Pose: Pose{X: 0, Y: 0}, Weight: 1},
		{Pose: Pose{X: 4, Y: 8}, Weight: 3},
	}
	got := set.Estimate()
	assert.InDelta(t, 3.0, got.X, 1e-12)
	assert.InDelta(t, 6.0, got.Y, 1e-12)
	assert.InDelta(t, 0.0, got.Theta, 1e-12)
}

func TestEstimateHeadingWraparound(t *testing.T) {
	a := ParticleSet{{Pose: Pose{Theta: 3.0}, Weight: 1}, {Pose: Pose{Theta: 3.0}, Weight: 1}}
	b := ParticleSet{{Pose: Pose{Theta: 3.0}, Weight: 1}, {Pose: Pose{Theta: 3.0 - 2*math.Pi}, Weight: 1}}
	assert.InDelta(t, a.Estimate().Theta, b.Estimate().Theta, 1e-12)
	assert.InDelta(t, 3.0, b.Estimate().Theta, 1e-12)

	// headings either side of the seam average to the seam, not to zero
	c := ParticleSet{{Pose: Pose{Theta: 3.1}, Weight: 1}, {Pose: Pose{Theta: -3.1}, Weight: 1}}
	assert.InDelta(t, math.Pi, math.Abs(c.Estimate().Theta), 1e-9)
}

func TestEstimateDegenerate(t *testing.T) {
	var empty ParticleSet
	assert.Equal(t, Pose{}, empty.Estimate())

	zero := ParticleSet{{Pose: Pose{X: 5, Y: 5, Theta: 1}, Weight: 0}}
	assert.Equal(t, Pose{}, zero.Estimate())
}
