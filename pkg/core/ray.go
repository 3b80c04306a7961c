package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both origin and direction. The direction is
// not renormalized, so t values stay comparable across spaces.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVec(r.Direction),
	}
}
