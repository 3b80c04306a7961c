package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite x-z plane (y = 0) in object space
type Plane struct{}

// NewPlaneShape creates a plane shape
func NewPlaneShape() *Plane {
	return &Plane{}
}

func (p *Plane) Type() ShapeType {
	return ShapeTypePlane
}

// LocalIntersect returns at most one t. Rays parallel to the plane miss,
// including rays that lie inside it.
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.FloatEpsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is +y everywhere
func (p *Plane) LocalNormalAt(point core.Point3) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// Equals reports whether other is also a plane
func (p *Plane) Equals(other Shape) bool {
	o, ok := other.(*Plane)
	return ok && o != nil
}
