package material

import (
	"reflect"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Object is the part of a scene primitive that shading needs: a way to move
// a world-space point into the primitive's own space.
type Object interface {
	WorldToObject(point core.Point3) core.Point3
}

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// ColorAt returns the color at a point already in pattern space
	ColorAt(point core.Point3) core.Color

	// Transform maps pattern space into object space
	Transform() core.Matrix

	// InverseTransform maps object space into pattern space
	InverseTransform() core.Matrix

	SetTransform(transform core.Matrix)
}

// PatternTransform stores a pattern's transform and its cached inverse.
// Embed it to satisfy the transform half of Pattern.
type PatternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
}

// NewPatternTransform returns an identity transform
func NewPatternTransform() PatternTransform {
	return PatternTransform{transform: core.Identity4(), inverse: core.Identity4()}
}

// Transform returns the pattern-to-object matrix
func (pt *PatternTransform) Transform() core.Matrix {
	return pt.transform
}

// InverseTransform returns the object-to-pattern matrix
func (pt *PatternTransform) InverseTransform() core.Matrix {
	return pt.inverse
}

// SetTransform replaces the transform and recomputes the cached inverse
func (pt *PatternTransform) SetTransform(transform core.Matrix) {
	pt.transform = transform
	pt.inverse = transform.Inverse()
}

// ColorAtObject evaluates a pattern at a world-space point on object.
// A nil object, including a nil pointer stored in the interface, is treated
// as sitting at the world origin untransformed.
func ColorAtObject(pattern Pattern, object Object, worldPoint core.Point3) core.Color {
	objectPoint := worldPoint
	if !isNilObject(object) {
		objectPoint = object.WorldToObject(worldPoint)
	}
	patternPoint := pattern.InverseTransform().MultiplyPoint(objectPoint)
	return pattern.ColorAt(patternPoint)
}

func isNilObject(object Object) bool {
	if object == nil {
		return true
	}
	v := reflect.ValueOf(object)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
