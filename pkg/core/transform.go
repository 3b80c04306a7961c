package core

import "math"

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	return NewMatrix(4, 4,
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return NewMatrix(4, 4,
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX rotates by radians around the x axis (left-handed)
func RotationX(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMatrix(4, 4,
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY rotates by radians around the y axis (left-handed)
func RotationY(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMatrix(4, 4,
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ rotates by radians around the z axis (left-handed)
func RotationZ(radians float64) Matrix {
	c, s := math.Cos(radians), math.Sin(radians)
	return NewMatrix(4, 4,
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(4, 4,
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// ViewTransform orients the world relative to an eye at from looking at to.
// The result maps world space into camera space, where the eye looks down -z.
func ViewTransform(from, to Point3, up Vec3) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrix(4, 4,
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// Chain composes transforms in application order: the first argument is
// applied first. Chain(a, b, c) == c x b x a.
func Chain(transforms ...Matrix) Matrix {
	result := Identity4()
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}
