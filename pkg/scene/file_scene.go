package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewFileScene creates a scene from a scene file
func NewFileScene(filename string, cameraOverrides ...CameraConfig) (*Scene, error) {
	desc, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return NewSceneFromDescription(name, desc, cameraOverrides...)
}

// NewSceneFromDescription converts a loaded scene description into a world
// and camera
func NewSceneFromDescription(name string, desc *loaders.SceneDescription, cameraOverrides ...CameraConfig) (*Scene, error) {
	config := world.DefaultConfig()
	if desc.Render.MaxDepth != nil {
		config.MaxDepth = *desc.Render.MaxDepth
	}
	config.Background = desc.Render.Background
	w := world.NewWithConfig(config)

	for _, l := range desc.Lights {
		w.AddLight(convertLight(l))
	}

	materials := make(map[string]material.Material, len(desc.Materials))
	for _, m := range desc.Materials {
		mat := convertMaterial(m)
		if err := mat.Validate(); err != nil {
			return nil, fmt.Errorf("material %q: %w", m.Name, err)
		}
		materials[m.Name] = mat
	}

	for _, o := range desc.Objects {
		obj, err := convertObject(o, materials)
		if err != nil {
			return nil, err
		}
		w.AddObject(obj)
	}

	cameraConfig := CameraConfig{
		Width:       desc.Render.Width,
		Height:      desc.Render.Height,
		FieldOfView: desc.Camera.FieldOfView,
		From:        desc.Camera.From,
		To:          desc.Camera.To,
		Up:          desc.Camera.Up,
	}
	s := newScene(name, w, cameraConfig, cameraOverrides...)
	s.Threads = desc.Render.Threads
	return s, nil
}

func convertLight(l loaders.LightDescription) lights.Light {
	if l.Type == "spot" {
		return lights.NewSpotLight(l.Position, l.Target, l.Intensity, l.ConeAngle, l.ConeDelta)
	}
	return lights.NewPointLight(l.Position, l.Intensity)
}

func convertMaterial(m loaders.MaterialDescription) material.Material {
	mat := material.DefaultMaterial()
	if m.Preset == "glass" {
		mat = material.Glass()
	}

	if m.Color != nil {
		mat.Color = *m.Color
	}
	overrides := []struct {
		value *float64
		dst   *float64
	}{
		{m.Ambient, &mat.Ambient},
		{m.Diffuse, &mat.Diffuse},
		{m.Specular, &mat.Specular},
		{m.Shininess, &mat.Shininess},
		{m.Reflective, &mat.Reflective},
		{m.Transparency, &mat.Transparency},
		{m.RefractiveIndex, &mat.RefractiveIndex},
	}
	for _, o := range overrides {
		if o.value != nil {
			*o.dst = *o.value
		}
	}

	if m.Pattern != nil {
		mat.Pattern = convertPattern(*m.Pattern)
	}
	return mat
}

func convertPattern(p loaders.PatternDescription) material.Pattern {
	var pattern material.Pattern
	switch p.Type {
	case "stripe":
		pattern = material.NewStripePattern(p.A, p.B)
	case "ring":
		pattern = material.NewRingPattern(p.A, p.B)
	case "checker":
		pattern = material.NewCheckerPattern(p.A, p.B)
	case "gradient":
		pattern = material.NewGradientPattern(p.A, p.B)
	default:
		pattern = material.NewSolidPattern(p.A)
	}
	if p.Transform.IsInvertible() {
		pattern.SetTransform(p.Transform)
	}

	if p.Perturb > 0 {
		return material.NewPerturbedPattern(pattern, p.Perturb, p.Seed)
	}
	return pattern
}

func convertObject(o loaders.ObjectDescription, materials map[string]material.Material) (*geometry.Primitive, error) {
	var obj *geometry.Primitive
	switch o.Shape {
	case "sphere":
		obj = geometry.NewPrimitive(geometry.NewSphereShape(o.Radius))
	case "plane":
		obj = geometry.NewPlane()
	default:
		return nil, fmt.Errorf("object %q: %w: %q", o.Name, loaders.ErrUnknownShape, o.Shape)
	}

	if o.Transform.IsInvertible() {
		obj.SetTransform(o.Transform)
	}
	if o.Material != "" {
		mat, ok := materials[o.Material]
		if !ok {
			return nil, fmt.Errorf("object %q: material %q is not defined", o.Name, o.Material)
		}
		obj.Material = mat
	}
	return obj, nil
}
