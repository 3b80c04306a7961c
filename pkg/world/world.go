package world

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Config contains the shading settings for a world
type Config struct {
	MaxDepth   int        // Maximum number of reflection/refraction bounces
	Background core.Color // Color of rays that hit nothing
}

// DefaultConfig returns sensible default shading settings
func DefaultConfig() Config {
	return Config{
		MaxDepth:   5,
		Background: core.Black(),
	}
}

// World is a collection of lights and primitives. It is read-only while a
// render is in progress, so ColorAt is safe for concurrent use.
type World struct {
	Config  Config
	lights  []lights.Light
	objects []*geometry.Primitive
}

// New creates an empty world with the default config
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an empty world
func NewWithConfig(config Config) *World {
	return &World{Config: config}
}

// NewDefaultWorld creates the standard two-sphere test world: a white light
// up and to the left, a green unit sphere, and a white half-size sphere inside it.
func NewDefaultWorld() *World {
	w := New()
	w.AddLight(lights.NewPointLight(core.NewPoint3(-10, 10, -10), core.White()))

	outer := geometry.NewSphere()
	outer.Material = material.NewMaterial(core.NewColor(0.8, 1.0, 0.6))
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2
	w.AddObject(outer)

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	w.AddObject(inner)

	return w
}

// AddLight appends a light
func (w *World) AddLight(light lights.Light) {
	w.lights = append(w.lights, light)
}

// SetLight replaces the light at index. Out-of-range indices are ignored.
func (w *World) SetLight(index int, light lights.Light) {
	if index < 0 || index >= len(w.lights) {
		return
	}
	w.lights[index] = light
}

// Light returns the light at index, or nil when out of range
func (w *World) Light(index int) lights.Light {
	if index < 0 || index >= len(w.lights) {
		return nil
	}
	return w.lights[index]
}

// LightCount returns the number of lights
func (w *World) LightCount() int {
	return len(w.lights)
}

// Lights returns the lights in insertion order
func (w *World) Lights() []lights.Light {
	return w.lights
}

// AddObject appends a primitive
func (w *World) AddObject(object *geometry.Primitive) {
	w.objects = append(w.objects, object)
}

// Object returns the primitive at index, or nil when out of range
func (w *World) Object(index int) *geometry.Primitive {
	if index < 0 || index >= len(w.objects) {
		return nil
	}
	return w.objects[index]
}

// ObjectCount returns the number of primitives
func (w *World) ObjectCount() int {
	return len(w.objects)
}

// Objects returns the primitives in insertion order
func (w *World) Objects() []*geometry.Primitive {
	return w.objects
}

// Validate checks the config and every object's material
func (w *World) Validate() error {
	if w.Config.MaxDepth < 0 {
		return fmt.Errorf("max depth %d must not be negative", w.Config.MaxDepth)
	}
	for i, object := range w.objects {
		if err := object.Material.Validate(); err != nil {
			return fmt.Errorf("object %d (%s): %w", i, object.Shape.Type(), err)
		}
	}
	return nil
}

// Intersect tests ray against every object and returns the sorted hits
func (w *World) Intersect(ray core.Ray) *geometry.IntersectionList {
	list := geometry.NewIntersectionList()
	for _, object := range w.objects {
		list.Add(object.Intersect(ray)...)
	}
	list.Sort()
	return list
}

// ColorAt traces ray through the world, following up to Config.MaxDepth
// reflection and refraction bounces
func (w *World) ColorAt(ray core.Ray) core.Color {
	return w.colorAt(ray, w.Config.MaxDepth)
}

func (w *World) colorAt(ray core.Ray, remaining int) core.Color {
	list := w.Intersect(ray)
	hit, ok := list.Hit()
	if !ok {
		return w.Config.Background
	}

	state := geometry.NewIntersectionState(hit, ray, list)
	return w.ShadeHit(state, remaining)
}

// ShadeHit returns the color at a precomputed hit: direct light from every
// light with its own shadow test, plus reflected and refracted light.
// remaining is the number of bounces still allowed. Surface and pattern
// terms use the exact hit point; only the shadow rays start at OverPoint.
func (w *World) ShadeHit(state geometry.IntersectionState, remaining int) core.Color {
	m := state.Object.Material

	surface := core.Black()
	for _, light := range w.lights {
		shadowed := w.IsShadowedFrom(light, state.OverPoint)
		surface = surface.Add(m.Lighting(state.Object, light, state.Point, state.EyeVector, state.NormalVector, shadowed))
	}

	reflected := w.ReflectedColor(state, remaining)
	refracted := w.RefractedColor(state, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := state.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror bounce at a hit
func (w *World) ReflectedColor(state geometry.IntersectionState, remaining int) core.Color {
	reflective := state.Object.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black()
	}

	ray := core.NewRay(state.OverPoint, state.ReflectVector)
	return w.colorAt(ray, remaining-1).Multiply(reflective)
}

// RefractedColor traces the ray bent through a transparent surface by Snell's law
func (w *World) RefractedColor(state geometry.IntersectionState, remaining int) core.Color {
	transparency := state.Object.Material.Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black()
	}

	ratio := state.N1 / state.N2
	cosI := state.EyeVector.Dot(state.NormalVector)
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		// total internal reflection
		return core.Black()
	}

	cosT := math.Sqrt(1.0 - sin2T)
	direction := state.NormalVector.Multiply(ratio*cosI - cosT).Subtract(state.EyeVector.Multiply(ratio))
	ray := core.NewRay(state.UnderPoint, direction)
	return w.colorAt(ray, remaining-1).Multiply(transparency)
}

// IsShadowed reports whether point is hidden from the first light.
// A world without lights has no shadows.
func (w *World) IsShadowed(point core.Point3) bool {
	if len(w.lights) == 0 {
		return false
	}
	return w.IsShadowedFrom(w.lights[0], point)
}

// IsShadowedFrom reports whether any object lies between point and light
func (w *World) IsShadowedFrom(light lights.Light, point core.Point3) bool {
	toLight := light.Position().Subtract(point)
	distance := toLight.Length()

	ray := core.NewRay(point, toLight.Normalize())
	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}
