package core

import (
	"fmt"
	"math"
)

// Point3 is a position in space. Points are translated by matrices; vectors are not.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 creates a new Point3
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Origin returns the point (0, 0, 0)
func Origin() Point3 {
	return Point3{}
}

// Add moves the point along a vector
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubtractVec moves the point against a vector
func (p Point3) SubtractVec(v Vec3) Point3 {
	return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Subtract returns the vector from other to p
func (p Point3) Subtract(other Point3) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceTo returns the euclidean distance between two points
func (p Point3) DistanceTo(other Point3) float64 {
	return p.Subtract(other).Length()
}

// Tuple returns the homogeneous form of the point (w = 1)
func (p Point3) Tuple() Tuple {
	return Tuple{p.X, p.Y, p.Z, 1}
}

// Vec3 reinterprets the point's coordinates as a displacement from the origin
func (p Point3) Vec3() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// Floor returns the point with every coordinate rounded down
func (p Point3) Floor() Point3 {
	return Point3{math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)}
}

// Equals compares two points component-wise within FloatEpsilon
func (p Point3) Equals(other Point3) bool {
	return FloatEquals(p.X, other.X) && FloatEquals(p.Y, other.Y) && FloatEquals(p.Z, other.Z)
}

func (p Point3) String() string {
	return fmt.Sprintf("Point3(%g, %g, %g)", p.X, p.Y, p.Z)
}
