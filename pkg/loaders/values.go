package loaders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parseFloats splits s on whitespace and parses exactly n numbers
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d numbers, got %q", ErrInvalidValue, n, s)
	}
	values := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, f)
		}
		values[i] = v
	}
	return values, nil
}

// ParseColor accepts "r g b" floats or a CSS color name such as "crimson"
func ParseColor(s string) (core.Color, error) {
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return core.ColorFromRGBA(named), nil
	}
	v, err := parseFloats(s, 3)
	if err != nil {
		return core.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}

// ParseVec3 parses "x y z"
func ParseVec3(s string) (core.Vec3, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

func parsePoint(s string) (core.Point3, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return core.Point3{}, err
	}
	return core.NewPoint3(v[0], v[1], v[2]), nil
}

// ParseTransform composes transform operations in the order given, so the
// first operation is applied to the object first. An empty list is the
// identity. Supported operations:
//
//	translate x y z
//	scale x y z
//	rotate-x deg | rotate-y deg | rotate-z deg
//	rotate ax ay az deg
//	shear xy xz yx yz zx zy
func ParseTransform(ops []string) (core.Matrix, error) {
	steps := make([]core.Matrix, 0, len(ops))
	for _, op := range ops {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		m, err := parseTransformOp(op)
		if err != nil {
			return core.Identity4(), err
		}
		steps = append(steps, m)
	}
	return core.Chain(steps...), nil
}

func parseTransformOp(op string) (core.Matrix, error) {
	name, args, _ := strings.Cut(op, " ")
	name = strings.ToLower(name)

	arity := map[string]int{
		"translate": 3,
		"scale":     3,
		"rotate-x":  1,
		"rotate-y":  1,
		"rotate-z":  1,
		"rotate":    4,
		"shear":     6,
	}
	n, ok := arity[name]
	if !ok {
		return core.Matrix{}, fmt.Errorf("%w: unknown transform %q", ErrInvalidValue, name)
	}
	v, err := parseFloats(args, n)
	if err != nil {
		return core.Matrix{}, fmt.Errorf("%s: %w", name, err)
	}

	switch name {
	case "translate":
		return core.Translation(v[0], v[1], v[2]), nil
	case "scale":
		return core.Scaling(v[0], v[1], v[2]), nil
	case "rotate-x":
		return core.RotationX(mgl64.DegToRad(v[0])), nil
	case "rotate-y":
		return core.RotationY(mgl64.DegToRad(v[0])), nil
	case "rotate-z":
		return core.RotationZ(mgl64.DegToRad(v[0])), nil
	case "rotate":
		axis := mgl64.Vec3{v[0], v[1], v[2]}
		if axis.Len() == 0 {
			return core.Matrix{}, fmt.Errorf("rotate: %w: zero axis", ErrInvalidValue)
		}
		return core.MatrixFromMat4(mgl64.HomogRotate3D(mgl64.DegToRad(v[3]), axis.Normalize())), nil
	default:
		return core.Shearing(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	}
}
