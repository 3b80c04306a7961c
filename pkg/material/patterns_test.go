package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

var (
	white = core.White()
	black = core.Black()
)

func TestStripePattern(t *testing.T) {
	pattern := NewStripePattern(white, black)

	tests := []struct {
		name     string
		point    core.Point3
		expected core.Color
	}{
		{"Constant in y", core.NewPoint3(0, 1, 0), white},
		{"Constant in y far", core.NewPoint3(0, 2, 0), white},
		{"Constant in z", core.NewPoint3(0, 0, 2), white},
		{"Alternates at 0.9", core.NewPoint3(0.9, 0, 0), white},
		{"Alternates at 1", core.NewPoint3(1, 0, 0), black},
		{"Alternates at -0.1", core.NewPoint3(-0.1, 0, 0), black},
		{"Alternates at -1", core.NewPoint3(-1, 0, 0), black},
		{"Alternates at -1.1", core.NewPoint3(-1.1, 0, 0), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pattern.ColorAt(tt.point)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestPattern_Transforms(t *testing.T) {
	tests := []struct {
		name             string
		objectTransform  core.Matrix
		patternTransform core.Matrix
		point            core.Point3
	}{
		{"Object transform", core.Scaling(2, 2, 2), core.Identity4(), core.NewPoint3(1.5, 0, 0)},
		{"Pattern transform", core.Identity4(), core.Scaling(2, 2, 2), core.NewPoint3(1.5, 0, 0)},
		{"Both transforms", core.Scaling(2, 2, 2), core.Translation(0.5, 0, 0), core.NewPoint3(2.5, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := NewStripePattern(white, black)
			pattern.SetTransform(tt.patternTransform)
			object := newTransformedObject(tt.objectTransform)

			result := ColorAtObject(pattern, object, tt.point)
			if !result.Equals(white) {
				t.Errorf("Expected white, got %v", result)
			}
		})
	}
}

func TestColorAtObject_NilObject(t *testing.T) {
	pattern := NewStripePattern(white, black)
	point := core.NewPoint3(1.5, 0, 0)

	var typedNil *transformedObject
	objects := map[string]Object{
		"nil interface":            nil,
		"nil pointer in interface": typedNil,
	}
	for name, object := range objects {
		t.Run(name, func(t *testing.T) {
			result := ColorAtObject(pattern, object, point)
			if !result.Equals(black) {
				t.Errorf("Expected %v, got %v", black, result)
			}
		})
	}
}

func TestPatternTransform_Default(t *testing.T) {
	pattern := NewRingPattern(white, black)
	assert.True(t, pattern.Transform().Equals(core.Identity4()))
	assert.True(t, pattern.InverseTransform().Equals(core.Identity4()))

	pattern.SetTransform(core.Translation(1, 2, 3))
	assert.True(t, pattern.Transform().Equals(core.Translation(1, 2, 3)))
	assert.True(t, pattern.InverseTransform().Equals(core.Translation(-1, -2, -3)))
}

func TestGradientPattern(t *testing.T) {
	pattern := NewGradientPattern(white, black)

	tests := []struct {
		x        float64
		expected core.Color
	}{
		{0, white},
		{0.25, core.NewColor(0.75, 0.75, 0.75)},
		{0.5, core.NewColor(0.5, 0.5, 0.5)},
		{0.75, core.NewColor(0.25, 0.25, 0.25)},
		{1.25, core.NewColor(0.75, 0.75, 0.75)},
	}
	for _, tt := range tests {
		if result := pattern.ColorAt(core.NewPoint3(tt.x, 0, 0)); !result.Equals(tt.expected) {
			t.Errorf("x=%v: expected %v, got %v", tt.x, tt.expected, result)
		}
	}
}

func TestRingPattern(t *testing.T) {
	pattern := NewRingPattern(white, black)

	points := map[core.Point3]core.Color{
		core.NewPoint3(0, 0, 0):         white,
		core.NewPoint3(1, 0, 0):         black,
		core.NewPoint3(0, 0, 1):         black,
		core.NewPoint3(0.708, 0, 0.708): black,
		core.NewPoint3(0, 5, 0):         white,
		core.NewPoint3(2, 0, 0):         white,
	}
	for point, expected := range points {
		if result := pattern.ColorAt(point); !result.Equals(expected) {
			t.Errorf("%v: expected %v, got %v", point, expected, result)
		}
	}
}

func TestCheckerPattern(t *testing.T) {
	pattern := NewCheckerPattern(white, black)

	tests := []struct {
		name     string
		point    core.Point3
		expected core.Color
	}{
		{"Repeats in x below", core.NewPoint3(0.99, 0, 0), white},
		{"Repeats in x above", core.NewPoint3(1.01, 0, 0), black},
		{"Repeats in y below", core.NewPoint3(0, 0.99, 0), white},
		{"Repeats in y above", core.NewPoint3(0, 1.01, 0), black},
		{"Repeats in z below", core.NewPoint3(0, 0, 0.99), white},
		{"Repeats in z above", core.NewPoint3(0, 0, 1.01), black},
		{"Diagonal neighbour", core.NewPoint3(1.5, 1.5, 0), white},
		{"Negative cell", core.NewPoint3(-0.5, 0, 0), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := pattern.ColorAt(tt.point); !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestSolidPattern(t *testing.T) {
	red := core.NewColor(1, 0, 0)
	pattern := NewSolidPattern(red)
	for _, p := range []core.Point3{core.Origin(), core.NewPoint3(-3, 7, 1e6)} {
		assert.True(t, pattern.ColorAt(p).Equals(red))
	}
}

func TestPerturbedPattern(t *testing.T) {
	inner := NewStripePattern(white, black)

	t.Run("Zero scale matches inner pattern", func(t *testing.T) {
		perturbed := NewPerturbedPattern(inner, 0, 1)
		for x := -2.0; x <= 2.0; x += 0.1 {
			p := core.NewPoint3(x, 0.3, -0.7)
			assert.True(t, perturbed.ColorAt(p).Equals(inner.ColorAt(p)), "x=%v", x)
		}
	})

	t.Run("Same seed is deterministic", func(t *testing.T) {
		a := NewPerturbedPattern(inner, 0.5, 42)
		b := NewPerturbedPattern(inner, 0.5, 42)
		for x := -2.0; x <= 2.0; x += 0.1 {
			p := core.NewPoint3(x, 0.37, 0.51)
			assert.True(t, a.ColorAt(p).Equals(b.ColorAt(p)), "x=%v", x)
		}
	})

	t.Run("Noise moves stripe edges", func(t *testing.T) {
		perturbed := NewPerturbedPattern(inner, 0.5, 7)
		changed := 0
		for i := 0; i < 200; i++ {
			// points straddling the x=1 edge at varied heights
			p := core.NewPoint3(0.98+0.04*float64(i%2), 0.13*float64(i), 0.29*float64(i))
			if !perturbed.ColorAt(p).Equals(inner.ColorAt(p)) {
				changed++
			}
		}
		if changed == 0 {
			t.Errorf("Expected noise to move at least one point across a stripe edge")
		}
	})

	t.Run("Jitter is bounded by scale", func(t *testing.T) {
		gradient := NewGradientPattern(black, white)
		perturbed := NewPerturbedPattern(gradient, 0.01, 3)
		for x := 0.2; x < 0.8; x += 0.05 {
			p := core.NewPoint3(x, 1.3, 2.7)
			result := perturbed.ColorAt(p)
			if math.Abs(result.R-x) > 0.05 {
				t.Errorf("x=%v: expected color near %v, got %v", x, x, result.R)
			}
		}
	})
}
