package particlefilter

import "math"

// Pose is a position in the plane plus a heading in radians.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// OdometryDelta is a rotate-translate-rotate control input.
type OdometryDelta struct {
	Rot1  float64
	Trans float64
	Rot2  float64
}

// Landmark is a static map feature the sensor measures ranges to.
type Landmark struct {
	X float64
	Y float64
}

// NormalizeAngle wraps theta into (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return theta
	}
	theta = math.Remainder(theta, 2*math.Pi)
	// Remainder returns [-pi, pi]; -pi and pi are the same heading
	if theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}

// Distance returns the euclidean distance from the pose to a landmark.
func (p Pose) Distance(lm Landmark) float64 {
	return math.Hypot(p.X-lm.X, p.Y-lm.Y)
}

// Advance applies a noise-free odometry step and returns the new pose.
func (p Pose) Advance(u OdometryDelta) Pose {
	return Pose{
		X:     p.X + u.Trans*math.Cos(p.Theta+u.Rot1),
		Y:     p.Y + u.Trans*math.Sin(p.Theta+u.Rot1),
		Theta: NormalizeAngle(p.Theta + u.Rot1 + u.Rot2),
	}
}
