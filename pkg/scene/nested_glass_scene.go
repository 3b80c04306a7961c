package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewNestedGlassScene creates a hollow glass ball containing an air bubble
// and a small diamond core, floating over a checkered floor. It exercises
// refraction through overlapping transparent objects.
func NewNestedGlassScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Width:       480,
		Height:      480,
		FieldOfView: 45,
		From:        core.NewPoint3(0, 3, -6),
		To:          core.NewPoint3(0, 1.2, 0),
		Up:          core.NewVec3(0, 1, 0),
	}

	config := world.DefaultConfig()
	config.MaxDepth = 8
	config.Background = core.NewColor(0.6, 0.7, 0.9)
	w := world.NewWithConfig(config)
	w.AddLight(lights.NewPointLight(core.NewPoint3(-5, 10, -10), core.White()))

	checks := material.NewCheckerPattern(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.2, 0.25))
	floor := geometry.NewPlane()
	floor.Material = material.DefaultMaterial()
	floor.Material.Pattern = checks
	floor.Material.Specular = 0
	w.AddObject(floor)

	back := geometry.NewPlane()
	back.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 8)))
	back.Material = material.NewMaterial(core.NewColor(0.5, 0.6, 0.8))
	back.Material.Specular = 0
	w.AddObject(back)

	center := core.Translation(0, 1.3, 0)

	outer := geometry.NewGlassSphere()
	outer.SetTransform(core.Chain(core.Scaling(1.2, 1.2, 1.2), center))
	outer.Material.Color = core.NewColor(0.05, 0.05, 0.05)
	outer.Material.Diffuse = 0.1
	outer.Material.Shininess = 300
	outer.Material.Reflective = 0.9
	outer.Material.Transparency = 0.9
	w.AddObject(outer)

	bubble := geometry.NewGlassSphere()
	bubble.SetTransform(core.Chain(core.Scaling(0.9, 0.9, 0.9), center))
	bubble.Material.Color = core.Black()
	bubble.Material.Diffuse = 0
	bubble.Material.Ambient = 0
	bubble.Material.Reflective = 0.9
	bubble.Material.Transparency = 0.9
	bubble.Material.RefractiveIndex = material.RefractiveIndexAir
	w.AddObject(bubble)

	gem := geometry.NewGlassSphere()
	gem.SetTransform(core.Chain(core.Scaling(0.35, 0.35, 0.35), center))
	gem.Material.Color = core.NewColor(0.1, 0.02, 0.02)
	gem.Material.Reflective = 0.5
	gem.Material.RefractiveIndex = material.RefractiveIndexDiamond
	w.AddObject(gem)

	return newScene("nested-glass", w, defaultCameraConfig, cameraOverrides...)
}
