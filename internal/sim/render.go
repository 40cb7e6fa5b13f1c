package sim

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Renderer saves a PNG of every step: particles, landmarks, truth and estimate.
type Renderer struct {
	outputDir string
	min, max  float64
	size      vg.Length
}

// NewRenderer writes frames into outputDir, creating it if needed. The plot
// axes span [min, max] on both x and y.
func NewRenderer(outputDir string, min, max float64) (*Renderer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	return &Renderer{outputDir: outputDir, min: min, max: max, size: 6 * vg.Inch}, nil
}

// FramePath is where the frame for step is written.
func (r *Renderer) FramePath(step int) string {
	return filepath.Join(r.outputDir, fmt.Sprintf("frame_%04d.png", step))
}

func (r *Renderer) Observe(f Frame) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("MCL t=%.1fs", f.Time)
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"
	p.X.Min, p.X.Max = r.min, r.max
	p.Y.Min, p.Y.Max = r.min, r.max
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(f.Particles))
	for i, pt := range f.Particles {
		pts[i].X = pt.Pose.X
		pts[i].Y = pt.Pose.Y
	}
	if len(pts) > 0 {
		particles, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("particles scatter: %w", err)
		}
		particles.GlyphStyle.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		particles.GlyphStyle.Radius = vg.Points(1)
		particles.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(particles)
	}

	if len(f.Landmarks) > 0 {
		lms := make(plotter.XYs, len(f.Landmarks))
		for i, lm := range f.Landmarks {
			lms[i].X = lm.X
			lms[i].Y = lm.Y
		}
		landmarks, err := plotter.NewScatter(lms)
		if err != nil {
			return fmt.Errorf("landmarks scatter: %w", err)
		}
		landmarks.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		landmarks.GlyphStyle.Radius = vg.Points(5)
		landmarks.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(landmarks)
		p.Legend.Add("landmarks", landmarks)
	}

	truth, err := plotter.NewScatter(plotter.XYs{{X: f.Truth.X, Y: f.Truth.Y}})
	if err != nil {
		return fmt.Errorf("truth scatter: %w", err)
	}
	truth.GlyphStyle.Color = color.RGBA{G: 160, A: 255}
	truth.GlyphStyle.Radius = vg.Points(4)
	truth.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(truth)
	p.Legend.Add("truth", truth)

	est, err := plotter.NewScatter(plotter.XYs{{X: f.Estimate.X, Y: f.Estimate.Y}})
	if err != nil {
		return fmt.Errorf("estimate scatter: %w", err)
	}
	est.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	est.GlyphStyle.Radius = vg.Points(4)
	est.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(est)
	p.Legend.Add("estimate", est)

	if err := p.Save(r.size, r.size, r.FramePath(f.Step)); err != nil {
		return fmt.Errorf("failed to save frame %d: %w", f.Step, err)
	}
	return nil
}
