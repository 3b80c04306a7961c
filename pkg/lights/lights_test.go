package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewPoint3(0, 10, 0), core.White())

	sample := light.Sample(core.NewPoint3(0, 2, 0))

	if !sample.Direction.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected direction (0, 1, 0), got %v", sample.Direction)
	}
	if math.Abs(sample.Distance-8) > 1e-9 {
		t.Errorf("Expected distance 8, got %v", sample.Distance)
	}
	if !sample.Intensity.Equals(core.White()) {
		t.Errorf("Point lights have no falloff, got %v", sample.Intensity)
	}
}

func TestPointLight_Equals(t *testing.T) {
	a := NewPointLight(core.NewPoint3(1, 2, 3), core.NewColor(0.5, 0.5, 0.5))
	b := NewPointLight(core.NewPoint3(1, 2, 3), core.NewColor(0.5, 0.5, 0.5))
	c := NewPointLight(core.NewPoint3(1, 2, 4), core.NewColor(0.5, 0.5, 0.5))

	if !a.Equals(b) {
		t.Errorf("Expected identical lights to be equal")
	}
	if a.Equals(c) {
		t.Errorf("Expected lights at different positions to differ")
	}
	if a.Equals(NewSpotLight(core.NewPoint3(1, 2, 3), core.Origin(), core.White(), 30, 5)) {
		t.Errorf("Expected point and spot lights to differ")
	}
}

func TestSpotLight_Falloff(t *testing.T) {
	// Pointing straight down from (0, 5, 0), 30 degree cone with a 10 degree soft edge
	light := NewSpotLight(core.NewPoint3(0, 5, 0), core.Origin(), core.NewColor(2, 2, 2), 30, 10)

	tests := []struct {
		name     string
		point    core.Point3
		expected float64
	}{
		{"Directly below", core.NewPoint3(0, 0, 0), 2.0},
		{"Inside inner cone", core.NewPoint3(5*math.Tan(10*math.Pi/180), 0, 0), 2.0},
		{"Outside cone", core.NewPoint3(5*math.Tan(40*math.Pi/180), 0, 0), 0.0},
		{"Behind light", core.NewPoint3(0, 10, 0), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := light.Sample(tt.point)
			if math.Abs(sample.Intensity.R-tt.expected) > 1e-9 {
				t.Errorf("Expected intensity %v, got %v", tt.expected, sample.Intensity.R)
			}
		})
	}

	// In the transition the intensity is strictly between the extremes
	edge := light.Sample(core.NewPoint3(5*math.Tan(25*math.Pi/180), 0, 0))
	if edge.Intensity.R <= 0 || edge.Intensity.R >= 2 {
		t.Errorf("Expected partial intensity in the soft edge, got %v", edge.Intensity.R)
	}
}
