package core

import "math"

const (
	// FloatEpsilon is the tolerance used by every Equals method in this package.
	// Ten float32 ULPs at 1.0, wide enough to absorb round-off from transform chains.
	FloatEpsilon = 10 * 1.1920929e-07

	// RayEpsilon is how far secondary ray origins are pushed off a surface.
	RayEpsilon = 1e-4
)

// FloatEquals reports whether a and b differ by less than FloatEpsilon
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < FloatEpsilon
}
