package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SolidPattern is the same color everywhere
type SolidPattern struct {
	PatternTransform
	Color core.Color
}

// NewSolidPattern creates a new solid color pattern
func NewSolidPattern(color core.Color) *SolidPattern {
	return &SolidPattern{PatternTransform: NewPatternTransform(), Color: color}
}

// ColorAt returns the solid color regardless of position
func (p *SolidPattern) ColorAt(point core.Point3) core.Color {
	return p.Color
}

// StripePattern alternates between A and B every unit along x
type StripePattern struct {
	PatternTransform
	A, B core.Color
}

// NewStripePattern creates a new stripe pattern
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

func (p *StripePattern) ColorAt(point core.Point3) core.Color {
	if isEven(math.Floor(point.X)) {
		return p.A
	}
	return p.B
}

// RingPattern alternates between A and B in concentric rings around the y axis
type RingPattern struct {
	PatternTransform
	A, B core.Color
}

// NewRingPattern creates a new ring pattern
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

func (p *RingPattern) ColorAt(point core.Point3) core.Color {
	if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates between A and B in unit cubes
type CheckerPattern struct {
	PatternTransform
	A, B core.Color
}

// NewCheckerPattern creates a new 3D checker pattern
func NewCheckerPattern(a, b core.Color) *CheckerPattern {
	return &CheckerPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

func (p *CheckerPattern) ColorAt(point core.Point3) core.Color {
	floored := point.Floor()
	if isEven(floored.X + floored.Y + floored.Z) {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B across each unit of x
type GradientPattern struct {
	PatternTransform
	A, B core.Color
}

// NewGradientPattern creates a new gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

func (p *GradientPattern) ColorAt(point core.Point3) core.Color {
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
}

// isEven expects an already floored value
func isEven(floored float64) bool {
	return math.Mod(floored, 2) == 0
}
