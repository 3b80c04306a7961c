package core

// Tuple is a homogeneous coordinate. W is 1 for points and 0 for vectors.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a new Tuple
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// IsPoint reports whether the tuple represents a point
func (t Tuple) IsPoint() bool {
	return FloatEquals(t.W, 1)
}

// IsVector reports whether the tuple represents a vector
func (t Tuple) IsVector() bool {
	return FloatEquals(t.W, 0)
}

// Point drops w and returns the spatial part as a point
func (t Tuple) Point() Point3 {
	return Point3{t.X, t.Y, t.Z}
}

// Vec3 drops w and returns the spatial part as a vector
func (t Tuple) Vec3() Vec3 {
	return Vec3{t.X, t.Y, t.Z}
}

// Equals compares two tuples component-wise within FloatEpsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) && FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) && FloatEquals(t.W, other.W)
}
