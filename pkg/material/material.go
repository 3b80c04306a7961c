package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Common refractive indices
const (
	RefractiveIndexVacuum  = 1.0
	RefractiveIndexAir     = 1.00029
	RefractiveIndexWater   = 1.333
	RefractiveIndexGlass   = 1.5
	RefractiveIndexDiamond = 2.417
)

// ErrInvalidMaterial is wrapped by every error Validate returns
var ErrInvalidMaterial = errors.New("invalid material")

// Material holds the Phong coefficients and the optical properties used by
// reflection and refraction.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 is matte, 1 is a perfect mirror
	Transparency    float64 // 0 is opaque, 1 is fully transparent
	RefractiveIndex float64
	Pattern         Pattern // Overrides Color when set
}

// DefaultMaterial returns a white, fairly glossy, opaque material
func DefaultMaterial() Material {
	return Material{
		Color:           core.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: RefractiveIndexVacuum,
	}
}

// NewMaterial creates a default material with the given color
func NewMaterial(color core.Color) Material {
	m := DefaultMaterial()
	m.Color = color
	return m
}

// Glass returns a fully transparent material with the refractive index of glass
func Glass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = RefractiveIndexGlass
	return m
}

// Validate reports every coefficient that is out of range
func (m Material) Validate() error {
	var errs []error
	if m.Ambient < 0 || m.Diffuse < 0 || m.Specular < 0 {
		errs = append(errs, fmt.Errorf("%w: ambient, diffuse and specular must be non-negative (%g, %g, %g)",
			ErrInvalidMaterial, m.Ambient, m.Diffuse, m.Specular))
	}
	if m.Shininess <= 0 {
		errs = append(errs, fmt.Errorf("%w: shininess %g must be positive", ErrInvalidMaterial, m.Shininess))
	}
	if m.Reflective < 0 || m.Reflective > 1 {
		errs = append(errs, fmt.Errorf("%w: reflective %g outside [0, 1]", ErrInvalidMaterial, m.Reflective))
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		errs = append(errs, fmt.Errorf("%w: transparency %g outside [0, 1]", ErrInvalidMaterial, m.Transparency))
	}
	if m.RefractiveIndex <= 0 {
		errs = append(errs, fmt.Errorf("%w: refractive index %g must be positive", ErrInvalidMaterial, m.RefractiveIndex))
	}
	return errors.Join(errs...)
}

// Equals compares every coefficient within core.FloatEpsilon. Patterns
// compare by identity.
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		core.FloatEquals(m.Ambient, other.Ambient) &&
		core.FloatEquals(m.Diffuse, other.Diffuse) &&
		core.FloatEquals(m.Specular, other.Specular) &&
		core.FloatEquals(m.Shininess, other.Shininess) &&
		core.FloatEquals(m.Reflective, other.Reflective) &&
		core.FloatEquals(m.Transparency, other.Transparency) &&
		core.FloatEquals(m.RefractiveIndex, other.RefractiveIndex) &&
		m.Pattern == other.Pattern
}

func (m Material) String() string {
	return fmt.Sprintf("Material(%v, Ambient(%.2f), Diffuse(%.2f), Specular(%.2f), Shininess(%.2f), Reflective(%.2f), Transparency(%.2f), RefractiveIndex(%.2f))",
		m.Color, m.Ambient, m.Diffuse, m.Specular, m.Shininess, m.Reflective, m.Transparency, m.RefractiveIndex)
}
