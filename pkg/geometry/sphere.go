package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is a sphere centered at the object-space origin
type Sphere struct {
	Radius float64
}

// NewSphereShape creates a sphere shape with the given radius
func NewSphereShape(radius float64) *Sphere {
	return &Sphere{Radius: radius}
}

func (s *Sphere) Type() ShapeType {
	return ShapeTypeSphere
}

// LocalIntersect solves |O + tD|² = r²
func (s *Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Vec3()

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || a == 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}

// LocalNormalAt points from the center through the surface point
func (s *Sphere) LocalNormalAt(point core.Point3) core.Vec3 {
	return point.Subtract(core.Origin())
}

// Equals compares radii
func (s *Sphere) Equals(other Shape) bool {
	o, ok := other.(*Sphere)
	return ok && o != nil && core.FloatEquals(s.Radius, o.Radius)
}
