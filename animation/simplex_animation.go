package animation

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ojrac/opensimplex-go"
)

// GradientTable is a list of keypoints. Positions run from 0.0 to 1.0 and
// must be sorted.
type GradientTable []struct {
	Col colorful.Color
	Pos float64
}

// GetInterpolatedColorFor blends between the two keypoints around t in HCL
// space.
func (gt GradientTable) GetInterpolatedColorFor(t float64) colorful.Color {
	for i := 0; i < len(gt)-1; i++ {
		c1 := gt[i]
		c2 := gt[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			t := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendHcl(c2.Col, t).Clamped()
		}
	}
	return gt[len(gt)-1].Col
}

//http://www.rapidtables.com/web/color/color-picker.htm
var simplexGradient = GradientTable{
	{colorful.Hsv(0.0, 1.0, 0.3), 0.0}, // red
	{colorful.Hsv(30.0, 1.0, 1.0), 0.3},
	{colorful.Hsv(180.0, 0.8, 0.1), 0.7},
	{colorful.Hsv(234.0, 1.0, 0.3), 1.0}, // purple
}

const (
	simplexPixelScale = 0.08
	simplexSpeed      = 0.15
)

// simplexAnimation drifts 2D noise over (pixel, time) through a gradient.
// Not part of the fixed catalogs; custom catalogs can name it.
type simplexAnimation struct {
	noise    opensimplex.Noise
	gradient GradientTable
}

func newSimplexAnimation(s *Strip) Animation {
	return &simplexAnimation{
		noise:    opensimplex.New(s.Random().Range(0, 1<<62)),
		gradient: simplexGradient,
	}
}

func (a *simplexAnimation) frame(s *Strip) error {
	seconds := float64(s.Now()) / 1000.0
	for i := range s.Pixels {
		noiseVal := a.noise.Eval2(float64(i)*simplexPixelScale, seconds*simplexSpeed)
		// Eval2 stays within [-1, 1]
		t := (noiseVal + 1.0) / 2.0
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		r, g, b := a.gradient.GetInterpolatedColorFor(t).RGB255()
		s.Pixels[i] = RGB{r, g, b}
	}
	return nil
}
