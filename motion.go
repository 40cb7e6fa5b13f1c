package particlefilter

import "math"

// OdometryNoise holds the standard deviations of the three odometry components.
type OdometryNoise struct {
	Rot1Std  float64
	TransStd float64
	Rot2Std  float64
}

// Move1D shifts every particle along x by delta plus its own Normal(0, noiseStd) draw.
func (s ParticleSet) Move1D(delta, noiseStd float64, rng RandomSource) {
	if len(s) == 0 {
		return
	}
	for i := range s {
		s[i].Pose.X += delta + rng.Normal(0, noiseStd)
	}
}

// MoveOdometry propagates every particle through the sample-based odometry
// model. Each particle gets its own noise, drawn in rot1, trans, rot2 order.
func (s ParticleSet) MoveOdometry(u OdometryDelta, noise OdometryNoise, rng RandomSource) {
	if len(s) == 0 {
		return
	}
	for i := range s {
		rot1 := u.Rot1 + rng.Normal(0, noise.Rot1Std)
		trans := u.Trans + rng.Normal(0, noise.TransStd)
		rot2 := u.Rot2 + rng.Normal(0, noise.Rot2Std)

		p := &s[i].Pose
		p.X += trans * math.Cos(p.Theta+rot1)
		p.Y += trans * math.Sin(p.Theta+rot1)
		p.Theta = NormalizeAngle(p.Theta + rot1 + rot2)
	}
}
