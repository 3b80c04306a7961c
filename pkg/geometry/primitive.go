package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Primitive places a Shape in the world with a transform and a material.
// The inverse and inverse-transpose of the transform are cached.
type Primitive struct {
	Shape    Shape
	Material material.Material

	transform       core.Matrix // Object space -> world space
	inverse         core.Matrix // World space -> object space
	normalTransform core.Matrix // Inverse transpose, for normals
}

// NewPrimitive creates an untransformed primitive with the default material
func NewPrimitive(shape Shape) *Primitive {
	return &Primitive{
		Shape:           shape,
		Material:        material.DefaultMaterial(),
		transform:       core.Identity4(),
		inverse:         core.Identity4(),
		normalTransform: core.Identity4(),
	}
}

// NewSphere creates a unit sphere at the origin
func NewSphere() *Primitive {
	return NewPrimitive(NewSphereShape(1.0))
}

// NewPlane creates the x-z plane
func NewPlane() *Primitive {
	return NewPrimitive(NewPlaneShape())
}

// NewGlassSphere creates a unit sphere made of glass
func NewGlassSphere() *Primitive {
	p := NewSphere()
	p.Material = material.Glass()
	return p
}

// Transform returns the object-to-world matrix
func (p *Primitive) Transform() core.Matrix {
	return p.transform
}

// InverseTransform returns the cached world-to-object matrix
func (p *Primitive) InverseTransform() core.Matrix {
	return p.inverse
}

// SetTransform replaces the transform and refreshes the cached matrices
func (p *Primitive) SetTransform(transform core.Matrix) {
	p.transform = transform
	p.inverse = transform.Inverse()
	p.normalTransform = p.inverse.Transpose()
}

// Intersect returns every intersection of a world-space ray with the primitive
func (p *Primitive) Intersect(ray core.Ray) []Intersection {
	local := ray.Transform(p.inverse)
	ts := p.Shape.LocalIntersect(local)
	if len(ts) == 0 {
		return nil
	}

	intersections := make([]Intersection, len(ts))
	for i, t := range ts {
		intersections[i] = NewIntersection(t, p)
	}
	return intersections
}

// WorldToObject moves a world-space point into object space
func (p *Primitive) WorldToObject(point core.Point3) core.Point3 {
	return p.inverse.MultiplyPoint(point)
}

// NormalAt returns the normalized world-space surface normal at a world-space point
func (p *Primitive) NormalAt(point core.Point3) core.Vec3 {
	localNormal := p.Shape.LocalNormalAt(p.WorldToObject(point))
	// MultiplyVec drops the w component the transpose would have polluted
	return p.normalTransform.MultiplyVec(localNormal).Normalize()
}

// Equals compares shape, transform and material
func (p *Primitive) Equals(other *Primitive) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Shape.Equals(other.Shape) &&
		p.transform.Equals(other.transform) &&
		p.Material.Equals(other.Material)
}

func (p *Primitive) String() string {
	return fmt.Sprintf("Primitive(%s, %v)", p.Shape.Type(), p.Material)
}
