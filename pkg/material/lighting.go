package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Lighting shades point with the Phong reflection model.
// eye and normal must be normalized. object is only consulted for patterns.
func (m Material) Lighting(object Object, light lights.Light, point core.Point3, eye, normal core.Vec3, inShadow bool) core.Color {
	base := m.Color
	if m.Pattern != nil {
		base = ColorAtObject(m.Pattern, object, point)
	}

	sample := light.Sample(point)
	effective := base.MultiplyColor(sample.Intensity)
	ambient := effective.Multiply(m.Ambient)

	// Light on the other side of the surface only contributes ambient
	lightDotNormal := sample.Direction.Dot(normal)
	if inShadow || lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	reflected := sample.Direction.Negate().Reflect(normal)
	reflectDotEye := reflected.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	specular := sample.Intensity.Multiply(m.Specular * math.Pow(reflectDotEye, m.Shininess))
	return ambient.Add(diffuse).Add(specular)
}
