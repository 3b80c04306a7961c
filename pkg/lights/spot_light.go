package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLight is a point light restricted to a cone with a soft edge
type SpotLight struct {
	position        core.Point3 // Light position in world space
	direction       core.Vec3   // Normalized direction vector (from -> to)
	intensity       core.Color  // Light intensity/color
	cosTotalWidth   float64     // Cosine of total cone angle (outer edge)
	cosFalloffStart float64     // Cosine of falloff start angle (inner cone)
}

// NewSpotLight creates a new spot light
// from: light position
// to: point the light is aimed at
// intensity: light color
// coneAngleDegrees: total cone angle in degrees
// coneDeltaAngleDegrees: falloff transition angle in degrees
func NewSpotLight(from, to core.Point3, intensity core.Color, coneAngleDegrees, coneDeltaAngleDegrees float64) *SpotLight {
	return &SpotLight{
		position:        from,
		direction:       to.Subtract(from).Normalize(),
		intensity:       intensity,
		cosTotalWidth:   math.Cos(mgl64.DegToRad(coneAngleDegrees)),
		cosFalloffStart: math.Cos(mgl64.DegToRad(coneAngleDegrees - coneDeltaAngleDegrees)),
	}
}

func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Position returns the light's location
func (sl *SpotLight) Position() core.Point3 {
	return sl.position
}

// Sample implements the Light interface
func (sl *SpotLight) Sample(point core.Point3) LightSample {
	toLightVec := sl.position.Subtract(point)
	distance := toLightVec.Length()
	if distance == 0 {
		return LightSample{Direction: core.NewVec3(0, 1, 0)}
	}

	toLight := toLightVec.Normalize()
	cosAngle := sl.direction.Dot(toLight.Negate())

	return LightSample{
		Direction: toLight,
		Distance:  distance,
		Intensity: sl.intensity.Multiply(sl.falloff(cosAngle)),
	}
}

// falloff is 1 inside the inner cone, 0 outside the outer cone and a
// quartic ramp in between
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}

// Equals compares every parameter of the cone
func (sl *SpotLight) Equals(other Light) bool {
	o, ok := other.(*SpotLight)
	if !ok || o == nil {
		return false
	}
	return sl.position.Equals(o.position) &&
		sl.direction.Equals(o.direction) &&
		sl.intensity.Equals(o.intensity) &&
		core.FloatEquals(sl.cosTotalWidth, o.cosTotalWidth) &&
		core.FloatEquals(sl.cosFalloffStart, o.cosFalloffStart)
}
