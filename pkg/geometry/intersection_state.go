package geometry

import (
	"math"
	"slices"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// IntersectionState is everything shading needs to know about a hit
type IntersectionState struct {
	T      float64
	Object *Primitive

	Point      core.Point3 // Where the ray hit
	OverPoint  core.Point3 // Point nudged along the normal, origin for shadow and reflection rays
	UnderPoint core.Point3 // Point nudged against the normal, origin for refraction rays

	EyeVector     core.Vec3 // Toward the ray origin
	NormalVector  core.Vec3 // Facing the eye
	ReflectVector core.Vec3

	Inside bool    // The normal was flipped because the ray started inside the object
	N1     float64 // Refractive index of the material being exited
	N2     float64 // Refractive index of the material being entered
}

// NewIntersectionState precomputes the shading state for hit. list is the
// full set of intersections along ray, used to work out N1 and N2; a nil
// list means the ray travels through vacuum on both sides.
func NewIntersectionState(hit Intersection, ray core.Ray, list *IntersectionList) IntersectionState {
	point := ray.Position(hit.T)
	state := IntersectionState{
		T:            hit.T,
		Object:       hit.Object,
		Point:        point,
		EyeVector:    ray.Direction.Negate(),
		NormalVector: hit.Object.NormalAt(point),
		N1:           material.RefractiveIndexVacuum,
		N2:           material.RefractiveIndexVacuum,
	}

	if state.NormalVector.Dot(state.EyeVector) < 0 {
		state.Inside = true
		state.NormalVector = state.NormalVector.Negate()
	}

	// Offsets use the flipped normal so they land on the eye's side
	offset := state.NormalVector.Multiply(core.RayEpsilon)
	state.OverPoint = point.Add(offset)
	state.UnderPoint = point.SubtractVec(offset)
	state.ReflectVector = ray.Direction.Reflect(state.NormalVector)

	if list != nil {
		state.N1, state.N2 = refractiveIndices(hit, list)
	}
	return state
}

// refractiveIndices walks the intersections in order, tracking which
// objects the ray is inside, until it reaches hit.
func refractiveIndices(hit Intersection, list *IntersectionList) (n1, n2 float64) {
	n1, n2 = material.RefractiveIndexVacuum, material.RefractiveIndexVacuum
	var containers []*Primitive

	for i := range list.ByDistance() {
		isHit := i.Equals(hit)
		if isHit && len(containers) > 0 {
			n1 = containers[len(containers)-1].Material.RefractiveIndex
		}

		if idx := slices.Index(containers, i.Object); idx >= 0 {
			containers = slices.Delete(containers, idx, idx+1)
		} else {
			containers = append(containers, i.Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit. Total internal
// reflection returns 1.
func (s IntersectionState) Schlick() float64 {
	cos := s.EyeVector.Dot(s.NormalVector)

	if s.N1 > s.N2 {
		ratio := s.N1 / s.N2
		sin2T := ratio * ratio * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (s.N1 - s.N2) / (s.N1 + s.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
