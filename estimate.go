package particlefilter

import "math"

// Estimate returns the weighted mean pose. Heading is averaged as a unit
// vector so headings either side of +-pi do not cancel out. An empty set or
// one without positive weight yields the zero pose.
func (s ParticleSet) Estimate() Pose {
	var sumW, sumX, sumY, sumSin, sumCos float64
	for _, p := range s {
		sumW += p.Weight
		sumX += p.Weight * p.Pose.X
		sumY += p.Weight * p.Pose.Y
		sumSin += p.Weight * math.Sin(p.Pose.Theta)
		sumCos += p.Weight * math.Cos(p.Pose.Theta)
	}
	if sumW <= 0 {
		return Pose{}
	}

	return Pose{
		X:     sumX / sumW,
		Y:     sumY / sumW,
		Theta: math.Atan2(sumSin, sumCos),
	}
}
