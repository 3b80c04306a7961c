package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene creates three matte spheres in the corner of a room made
// of a floor plane and two walls, lit from the upper left.
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		Width:       640,
		Height:      360,
		FieldOfView: 60,
		From:        core.NewPoint3(0, 1.5, -5),
		To:          core.NewPoint3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
	}

	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint3(-10, 10, -10), core.White()))

	wallMat := material.NewMaterial(core.NewColor(1, 0.9, 0.9))
	wallMat.Specular = 0

	floor := geometry.NewPlane()
	floor.Material = wallMat
	w.AddObject(floor)

	for _, angle := range []float64{-math.Pi / 4, math.Pi / 4} {
		wall := geometry.NewPlane()
		wall.SetTransform(core.Chain(
			core.RotationX(math.Pi/2),
			core.RotationY(angle),
			core.Translation(0, 0, 5),
		))
		wall.Material = wallMat
		w.AddObject(wall)
	}

	spheres := []struct {
		color     core.Color
		scale     float64
		translate core.Vec3
	}{
		{core.NewColor(0.1, 1, 0.5), 1, core.NewVec3(-0.5, 1, 0.5)},
		{core.NewColor(0.5, 1, 0.1), 0.5, core.NewVec3(1.5, 0.5, -0.5)},
		{core.NewColor(1, 0.8, 0.1), 0.33, core.NewVec3(-1.5, 0.33, -0.75)},
	}
	for _, s := range spheres {
		sphere := geometry.NewSphere()
		sphere.SetTransform(core.Chain(
			core.Scaling(s.scale, s.scale, s.scale),
			core.Translation(s.translate.X, s.translate.Y, s.translate.Z),
		))
		sphere.Material = material.NewMaterial(s.color)
		sphere.Material.Diffuse = 0.7
		sphere.Material.Specular = 0.3
		w.AddObject(sphere)
	}

	return newScene("default", w, defaultCameraConfig, cameraOverrides...)
}
