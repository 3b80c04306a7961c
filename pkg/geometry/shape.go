package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ShapeType names a shape for logging and scene files
type ShapeType string

const (
	ShapeTypeSphere ShapeType = "sphere"
	ShapeTypePlane  ShapeType = "plane"
)

// Shape is the object-space half of a Primitive. Implementations never see
// world coordinates; Primitive moves rays and points into object space first.
type Shape interface {
	Type() ShapeType

	// LocalIntersect returns the t values where an object-space ray meets the
	// surface, in no particular order
	LocalIntersect(ray core.Ray) []float64

	// LocalNormalAt returns the object-space normal at an object-space point
	// on the surface. The result need not be normalized.
	LocalNormalAt(point core.Point3) core.Vec3

	Equals(other Shape) bool
}
