package particlefilter

import "math"

// Reading is an observation that can score how well a pose explains it.
type Reading interface {
	Likelihood(Pose) float64
}

// GaussianLikelihood is the normal density of x around mean. A non-positive
// variance yields 0 instead of NaN or Inf.
func GaussianLikelihood(x, mean, sigma float64) float64 {
	variance := sigma * sigma
	if variance <= 0 {
		return 0
	}
	diff := x - mean
	return math.Exp(-(diff*diff)/(2*variance)) / math.Sqrt(2*math.Pi*variance)
}

// PointReading is a scalar measurement of the x coordinate.
type PointReading struct {
	Value float64
	Sigma float64
}

func (r PointReading) Likelihood(p Pose) float64 {
	return GaussianLikelihood(r.Value, p.X, r.Sigma)
}

// RangeReading is a measured distance to a known landmark.
type RangeReading struct {
	Landmark Landmark
	Range    float64
}

// LandmarkReadings is one step's worth of range measurements, treated as
// independent given the pose.
type LandmarkReadings struct {
	Ranges []RangeReading
	Sigma  float64
}

// PairRanges zips landmarks with measured ranges by index, dropping the
// tail of the longer list.
func PairRanges(landmarks []Landmark, ranges []float64) []RangeReading {
	n := min(len(landmarks), len(ranges))
	out := make([]RangeReading, n)
	for i := 0; i < n; i++ {
		out[i] = RangeReading{Landmark: landmarks[i], Range: ranges[i]}
	}
	return out
}

func (r LandmarkReadings) Likelihood(p Pose) float64 {
	l := 1.0
	for _, rr := range r.Ranges {
		l *= GaussianLikelihood(rr.Range, p.Distance(rr.Landmark), r.Sigma)
	}
	return l
}

// UpdateWeights multiplies each particle's weight by the reading's likelihood.
func (s ParticleSet) UpdateWeights(r Reading) {
	if len(s) == 0 || r == nil {
		return
	}
	for i := range s {
		s[i].Weight *= r.Likelihood(s[i].Pose)
	}
}

// UpdateWeights1D folds a scalar x measurement into the weights.
func (s ParticleSet) UpdateWeights1D(measurement, sigma float64) {
	s.UpdateWeights(PointReading{Value: measurement, Sigma: sigma})
}

// UpdateWeightsLandmarks folds one range per landmark into the weights.
func (s ParticleSet) UpdateWeightsLandmarks(landmarks []Landmark, ranges []float64, sigma float64) {
	s.UpdateWeights(LandmarkReadings{Ranges: PairRanges(landmarks, ranges), Sigma: sigma})
}
