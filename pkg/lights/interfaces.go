package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
	LightTypeSpot  LightType = "spot"
)

// Light interface for sources that illuminate a shading point directly
type Light interface {
	Type() LightType

	// Position returns the world-space location shadow rays are traced toward
	Position() core.Point3

	// Sample evaluates the light as seen from point.
	// Returns LightSample with direction FROM shading point TO light
	Sample(point core.Point3) LightSample

	// Equals reports whether other is the same kind of light with the same parameters
	Equals(other Light) bool
}

// LightSample contains what the shading model needs from a light at one point
type LightSample struct {
	Direction core.Vec3  // Normalized direction from shading point to light
	Distance  float64    // Distance to light
	Intensity core.Color // Light arriving at the point (zero outside a spot cone)
}
