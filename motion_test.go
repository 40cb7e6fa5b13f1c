package particlefilter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove1D(t *testing.T) {
	set := setAt(0, 10)
	set[0].Pose.Y, set[0].Pose.Theta = 3, 0.7
	set[1].Weight = 0.25

	set.Move1D(1.0, 2.0, &fixedSource{normals: []float64{0.5, -0.5}})

	assert.InDelta(t, 2.0, set[0].Pose.X, 1e-12)
	assert.InDelta(t, 10.0, set[1].Pose.X, 1e-12)
	assert.Equal(t, 3.0, set[0].Pose.Y)
	assert.Equal(t, 0.7, set[0].Pose.Theta)
	assert.Equal(t, []float64{1, 0.25}, set.Weights())
}

func TestMove1DNoisePerParticle(t *testing.T) {
	set := setAt(0, 0, 0, 0)
	set.Move1D(0, 1, NewRandom(5))
	assert.NotEqual(t, set[0].Pose.X, set[1].Pose.X)
	assert.NotEqual(t, set[2].Pose.X, set[3].Pose.X)
}

func TestMoveOdometryNoiseFree(t *testing.T) {
	set := ParticleSet{{Pose: Pose{}, Weight: 0.3}}
	set.MoveOdometry(OdometryDelta{Rot1: math.Pi / 2, Trans: 1}, OdometryNoise{}, &fixedSource{})

	assert.InDelta(t, 0.0, set[0].Pose.X, 1e-12)
	assert.InDelta(t, 1.0, set[0].Pose.Y, 1e-12)
	assert.InDelta(t, math.Pi/2, set[0].Pose.Theta, 1e-12)
	assert.Equal(t, 0.3, set[0].Weight)
}

func TestMoveOdometryDrawOrder(t *testing.T) {
	set := ParticleSet{{Pose: Pose{X: 1, Y: 1}, Weight: 1}}
	noise := OdometryNoise{Rot1Std: 0.1, TransStd: 0.2, Rot2Std: 0.3}
	set.MoveOdometry(OdometryDelta{Rot1: 0, Trans: 1, Rot2: 0}, noise, &fixedSource{normals: []float64{1, 2, 3}})

	rot1, trans, rot2 := 0.1, 1.4, 0.9
	assert.InDelta(t, 1+trans*math.Cos(rot1), set[0].Pose.X, 1e-12)
	assert.InDelta(t, 1+trans*math.Sin(rot1), set[0].Pose.Y, 1e-12)
	assert.InDelta(t, rot1+rot2, set[0].Pose.Theta, 1e-12)
}

func TestMoveOdometryWrapsHeading(t *testing.T) {
	set := ParticleSet{{Pose: Pose{Theta: 3}, Weight: 1}}
	set.MoveOdometry(OdometryDelta{Rot1: 0.5, Rot2: 0.5}, OdometryNoise{}, &fixedSource{})
	assert.InDelta(t, 4-2*math.Pi, set[0].Pose.Theta, 1e-12)
}

func TestMoveEmptySet(t *testing.T) {
	var empty ParticleSet
	rng := &fixedSource{normals: []float64{1}}
	assert.NotPanics(t, func() {
		empty.Move1D(1, 1, rng)
		empty.MoveOdometry(OdometryDelta{Trans: 1}, OdometryNoise{TransStd: 1}, rng)
	})
	assert.Equal(t, 0, rng.ni)
}
