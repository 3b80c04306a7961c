package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewPatternsScene shows every pattern type: a ring floor, a gradient wall,
// a striped sphere, a checkered sphere and a noise-perturbed marble sphere
// under a spot light.
func NewPatternsScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Width:       640,
		Height:      360,
		FieldOfView: 60,
		From:        core.NewPoint3(0, 2.5, -6),
		To:          core.NewPoint3(0, 0.8, 0),
		Up:          core.NewVec3(0, 1, 0),
	}

	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint3(-6, 8, -8), core.NewColor(0.5, 0.5, 0.5)))
	w.AddLight(lights.NewSpotLight(
		core.NewPoint3(2, 7, -3),
		core.NewPoint3(0, 0.8, 0),
		core.NewColor(0.8, 0.75, 0.6),
		30, 10,
	))

	rings := material.NewRingPattern(core.NewColor(0.8, 0.8, 0.75), core.NewColor(0.55, 0.45, 0.35))
	rings.SetTransform(core.Scaling(0.4, 0.4, 0.4))
	floor := geometry.NewPlane()
	floor.Material = material.DefaultMaterial()
	floor.Material.Pattern = rings
	floor.Material.Specular = 0
	w.AddObject(floor)

	gradient := material.NewGradientPattern(core.NewColor(0.2, 0.3, 0.6), core.NewColor(0.8, 0.4, 0.3))
	gradient.SetTransform(core.Chain(core.Scaling(16, 1, 1), core.Translation(-8, 0, 0)))
	wall := geometry.NewPlane()
	wall.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 5)))
	wall.Material = material.DefaultMaterial()
	wall.Material.Pattern = gradient
	wall.Material.Specular = 0
	w.AddObject(wall)

	stripes := material.NewStripePattern(core.NewColor(0.9, 0.2, 0.2), core.White())
	stripes.SetTransform(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.RotationZ(math.Pi/4)))
	striped := geometry.NewSphere()
	striped.SetTransform(core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(-2, 0.8, 0)))
	striped.Material = material.DefaultMaterial()
	striped.Material.Pattern = stripes
	striped.Material.Diffuse = 0.7
	striped.Material.Specular = 0.3
	w.AddObject(striped)

	checks := material.NewCheckerPattern(core.NewColor(0.1, 0.5, 0.2), core.NewColor(0.95, 0.95, 0.8))
	checks.SetTransform(core.Scaling(0.3, 0.3, 0.3))
	checkered := geometry.NewSphere()
	checkered.SetTransform(core.Translation(0, 1, 0.5))
	checkered.Material = material.DefaultMaterial()
	checkered.Material.Pattern = checks
	checkered.Material.Diffuse = 0.7
	checkered.Material.Specular = 0.3
	w.AddObject(checkered)

	veins := material.NewStripePattern(core.NewColor(0.95, 0.95, 0.95), core.NewColor(0.35, 0.38, 0.45))
	veins.SetTransform(core.Scaling(0.12, 0.12, 0.12))
	marble := geometry.NewSphere()
	marble.SetTransform(core.Chain(core.Scaling(0.7, 0.7, 0.7), core.Translation(2, 0.7, -0.5)))
	marble.Material = material.DefaultMaterial()
	marble.Material.Pattern = material.NewPerturbedPattern(veins, 0.5, 42)
	marble.Material.Shininess = 120
	marble.Material.Reflective = 0.05
	w.AddObject(marble)

	return newScene("patterns", w, defaultCameraConfig, cameraOverrides...)
}
