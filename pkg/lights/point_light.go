package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no distance falloff
type PointLight struct {
	position  core.Point3
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point3, intensity core.Color) *PointLight {
	return &PointLight{position: position, Intensity: intensity}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Position returns the light's location
func (pl *PointLight) Position() core.Point3 {
	return pl.position
}

// Sample implements the Light interface
func (pl *PointLight) Sample(point core.Point3) LightSample {
	toLight := pl.position.Subtract(point)
	return LightSample{
		Direction: toLight.Normalize(),
		Distance:  toLight.Length(),
		Intensity: pl.Intensity,
	}
}

// Equals compares position and intensity
func (pl *PointLight) Equals(other Light) bool {
	o, ok := other.(*PointLight)
	if !ok || o == nil {
		return false
	}
	return pl.position.Equals(o.position) && pl.Intensity.Equals(o.Intensity)
}

func (pl *PointLight) String() string {
	return fmt.Sprintf("PointLight(%v, %v)", pl.position, pl.Intensity)
}
