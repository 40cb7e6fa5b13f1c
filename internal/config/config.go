package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	pf "github.com/jhoydich/mcl"
)

// Scenario modes.
const (
	ModeLandmarks = "landmarks"
	Mode1D        = "1d"
)

// PoseConfig is a pose as written in the scenario file.
type PoseConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
}

func (p PoseConfig) Pose() pf.Pose {
	return pf.Pose{X: p.X, Y: p.Y, Theta: p.Theta}
}

type LandmarkConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type OdometryConfig struct {
	Rot1  float64 `yaml:"rot1"`
	Trans float64 `yaml:"trans"`
	Rot2  float64 `yaml:"rot2"`
}

type NoiseConfig struct {
	Rot1Std   float64 `yaml:"rot1_std"`
	TransStd  float64 `yaml:"trans_std"`
	Rot2Std   float64 `yaml:"rot2_std"`
	SensorStd float64 `yaml:"sensor_std"`
}

// WorldConfig bounds the square the agent moves in.
type WorldConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config is the root scenario configuration.
type Config struct {
	Mode      string           `yaml:"mode"`
	Seed      uint64           `yaml:"seed"`
	Particles int              `yaml:"particles"`
	Steps     int              `yaml:"steps"`
	Dt        float64          `yaml:"dt"`
	World     WorldConfig      `yaml:"world"`
	Truth     PoseConfig       `yaml:"truth"`
	Odometry  OdometryConfig   `yaml:"odometry"`
	Delta1D   float64          `yaml:"delta_1d"`
	Noise     NoiseConfig      `yaml:"noise"`
	Landmarks []LandmarkConfig `yaml:"landmarks"`
}

// Default returns the reference three-landmark scenario.
func Default() *Config {
	return &Config{
		Mode:      ModeLandmarks,
		Seed:      42,
		Particles: 300,
		Steps:     200,
		Dt:        0.1,
		World:     WorldConfig{Min: 0, Max: 15},
		Truth:     PoseConfig{X: 7.5, Y: 4.0, Theta: 0},
		Odometry:  OdometryConfig{Rot1: 0.1, Trans: 0.5, Rot2: 0.05},
		Delta1D:   0.5,
		Noise: NoiseConfig{
			Rot1Std:   0.05,
			TransStd:  0.1,
			Rot2Std:   0.05,
			SensorStd: 0.4,
		},
		Landmarks: []LandmarkConfig{
			{X: 2.0, Y: 4.0},
			{X: 13.0, Y: 4.0},
			{X: 7.5, Y: 13.0},
		},
	}
}

// Load reads a YAML scenario file over the defaults. Fields the file omits keep
// their default values.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cleanPath, err)
	}
	return cfg, nil
}

// Validate checks the scenario for values the driving loop cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Mode != ModeLandmarks && c.Mode != Mode1D {
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Particles <= 0 {
		errs = append(errs, fmt.Errorf("particles must be positive, got %d", c.Particles))
	}
	if c.Steps <= 0 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.Steps))
	}
	if c.World.Max <= c.World.Min {
		errs = append(errs, fmt.Errorf("world max %.3f must exceed min %.3f", c.World.Max, c.World.Min))
	}
	if c.Noise.Rot1Std < 0 || c.Noise.TransStd < 0 || c.Noise.Rot2Std < 0 || c.Noise.SensorStd < 0 {
		errs = append(errs, errors.New("noise standard deviations must not be negative"))
	}
	if c.Mode == ModeLandmarks && len(c.Landmarks) == 0 {
		errs = append(errs, errors.New("landmarks mode needs at least one landmark"))
	}
	return errors.Join(errs...)
}

// FilterConfig translates the scenario into the particle filter's configuration.
// Particles start anywhere in the world with any heading.
func (c *Config) FilterConfig() pf.Config {
	return pf.Config{
		NumParticles: c.Particles,
		MinPose:      pf.Pose{X: c.World.Min, Y: c.World.Min, Theta: -math.Pi},
		MaxPose:      pf.Pose{X: c.World.Max, Y: c.World.Max, Theta: math.Pi},
		Noise: pf.OdometryNoise{
			Rot1Std:  c.Noise.Rot1Std,
			TransStd: c.Noise.TransStd,
			Rot2Std:  c.Noise.Rot2Std,
		},
		SensorSigma: c.Noise.SensorStd,
	}
}

func (c *Config) OdometryDelta() pf.OdometryDelta {
	return pf.OdometryDelta{Rot1: c.Odometry.Rot1, Trans: c.Odometry.Trans, Rot2: c.Odometry.Rot2}
}

func (c *Config) LandmarkMap() []pf.Landmark {
	out := make([]pf.Landmark, len(c.Landmarks))
	for i, lm := range c.Landmarks {
		out[i] = pf.Landmark{X: lm.X, Y: lm.Y}
	}
	return out
}
