package particlefilter

// fixedSource replays canned variates. Uniform values are fractions of the
// requested range and Normal values are multiples of the requested stddev.
// An exhausted list wraps around; an empty one yields min or mean.
type fixedSource struct {
	uniforms []float64
	normals  []float64
	ui, ni   int
}

func (f *fixedSource) Uniform(min, max float64) float64 {
	if len(f.uniforms) == 0 {
		return min
	}
	v := f.uniforms[f.ui%len(f.uniforms)]
	f.ui++
	return min + v*(max-min)
}

func (f *fixedSource) Normal(mean, stddev float64) float64 {
	if len(f.normals) == 0 {
		return mean
	}
	v := f.normals[f.ni%len(f.normals)]
	f.ni++
	return mean + v*stddev
}

func setAt(xs ...float64) ParticleSet {
	s := make(ParticleSet, len(xs))
	for i, x := range xs {
		s[i] = Particle{Pose: Pose{X: x}, Weight: 1}
	}
	return s
}
