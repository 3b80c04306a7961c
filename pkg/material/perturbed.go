package material

import (
	perlin "github.com/aquilax/go-perlin"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Noise parameters for the perturbation field
const (
	perturbAlpha   = 2.0
	perturbBeta    = 2.0
	perturbOctaves = 3
)

// PerturbedPattern jitters the lookup point of another pattern with 3D
// Perlin noise, breaking up the straight edges of stripes and checkers.
type PerturbedPattern struct {
	PatternTransform
	Inner Pattern
	Scale float64 // Maximum jitter distance per axis, in pattern units
	noise *perlin.Perlin
}

// NewPerturbedPattern wraps inner. The same seed always produces the same field.
func NewPerturbedPattern(inner Pattern, scale float64, seed int64) *PerturbedPattern {
	return &PerturbedPattern{
		PatternTransform: NewPatternTransform(),
		Inner:            inner,
		Scale:            scale,
		noise:            perlin.NewPerlin(perturbAlpha, perturbBeta, perturbOctaves, seed),
	}
}

// ColorAt evaluates the inner pattern at the jittered point. The inner
// pattern's own transform is applied after the jitter.
func (p *PerturbedPattern) ColorAt(point core.Point3) core.Color {
	jittered := point
	if p.Scale != 0 {
		// shifted lookups give each axis its own field
		jitter := core.NewVec3(
			p.noise.Noise3D(point.X, point.Y, point.Z),
			p.noise.Noise3D(point.X, point.Y, point.Z+1.7),
			p.noise.Noise3D(point.X, point.Y, point.Z+3.1),
		)
		jittered = point.Add(jitter.Multiply(p.Scale))
	}
	return p.Inner.ColorAt(p.Inner.InverseTransform().MultiplyPoint(jittered))
}
