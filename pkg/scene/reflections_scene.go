package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewReflectionsScene creates a mirror-finished floor and back wall with a
// row of spheres of increasing reflectivity.
func NewReflectionsScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Width:       640,
		Height:      360,
		FieldOfView: 55,
		From:        core.NewPoint3(0, 2, -6),
		To:          core.NewPoint3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
	}

	config := world.DefaultConfig()
	config.MaxDepth = 6
	config.Background = core.NewColor(0.05, 0.05, 0.08)
	w := world.NewWithConfig(config)
	w.AddLight(lights.NewPointLight(core.NewPoint3(-8, 10, -8), core.NewColor(0.9, 0.9, 0.9)))
	w.AddLight(lights.NewPointLight(core.NewPoint3(6, 6, -4), core.NewColor(0.25, 0.25, 0.3)))

	floorPattern := material.NewCheckerPattern(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.15, 0.15, 0.15))
	floor := geometry.NewPlane()
	floor.Material = material.DefaultMaterial()
	floor.Material.Pattern = floorPattern
	floor.Material.Specular = 0.2
	floor.Material.Reflective = 0.35
	w.AddObject(floor)

	back := geometry.NewPlane()
	back.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6)))
	back.Material = material.NewMaterial(core.NewColor(0.3, 0.35, 0.5))
	back.Material.Specular = 0
	back.Material.Reflective = 0.2
	w.AddObject(back)

	colors := []core.Color{
		core.NewColor(0.9, 0.2, 0.2),
		core.NewColor(0.9, 0.6, 0.1),
		core.NewColor(0.2, 0.7, 0.3),
		core.NewColor(0.2, 0.4, 0.9),
		core.NewColor(0.1, 0.1, 0.1),
	}
	for i, color := range colors {
		sphere := geometry.NewSphere()
		sphere.SetTransform(core.Chain(
			core.Scaling(0.6, 0.6, 0.6),
			core.Translation(float64(i-2)*1.4, 0.6, 0),
		))
		sphere.Material = material.NewMaterial(color)
		sphere.Material.Diffuse = 0.6
		sphere.Material.Shininess = 300
		sphere.Material.Reflective = float64(i) * 0.2
		w.AddObject(sphere)
	}

	return newScene("reflections", w, defaultCameraConfig, cameraOverrides...)
}
