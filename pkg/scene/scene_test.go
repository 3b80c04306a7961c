package scene

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

func TestBuiltinScenes(t *testing.T) {
	for _, info := range ListBuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID)
			require.NoError(t, err)

			assert.Equal(t, info.ID, s.Name)
			assert.NoError(t, s.Validate())
			assert.Greater(t, s.World.ObjectCount(), 0)
			assert.Greater(t, s.World.LightCount(), 0)
			assert.Equal(t, s.CameraConfig.Width, s.Camera.HSize())
			assert.Equal(t, s.CameraConfig.Height, s.Camera.VSize())
		})
	}
}

func TestNew_CameraOverrides(t *testing.T) {
	s, err := New("default", CameraConfig{Width: 32, Height: 18})
	require.NoError(t, err)

	assert.Equal(t, 32, s.Camera.HSize())
	assert.Equal(t, 18, s.Camera.VSize())
	assert.Equal(t, 60.0, s.CameraConfig.FieldOfView, "field of view should keep the scene default")
}

func TestNew_UnknownScene(t *testing.T) {
	for _, id := range []string{"nope", "file:does-not-exist"} {
		_, err := New(id)
		assert.True(t, errors.Is(err, ErrUnknownScene), "id %q: got %v", id, err)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{
		Width:       100,
		Height:      50,
		FieldOfView: 45,
		From:        core.NewPoint3(1, 2, 3),
		To:          core.Origin(),
		Up:          core.NewVec3(0, 1, 0),
	}

	tests := []struct {
		name     string
		override CameraConfig
		expected CameraConfig
	}{
		{"empty override", CameraConfig{}, base},
		{
			"size only",
			CameraConfig{Width: 10, Height: 20},
			CameraConfig{Width: 10, Height: 20, FieldOfView: 45, From: base.From, To: base.To, Up: base.Up},
		},
		{
			"eye is never overridden",
			CameraConfig{FieldOfView: 90, From: core.NewPoint3(9, 9, 9)},
			CameraConfig{Width: 100, Height: 50, FieldOfView: 90, From: base.From, To: base.To, Up: base.Up},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MergeCameraConfig(base, tt.override)
			if result != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestScene_RenderIsDeterministic(t *testing.T) {
	single, err := New("patterns", CameraConfig{Width: 24, Height: 16})
	require.NoError(t, err)
	single.Threads = 1
	img1 := single.NewCanvas()
	stats, err := single.Render(context.Background(), img1)
	require.NoError(t, err)
	assert.Equal(t, 24*16, stats.PixelsWritten)

	parallel, err := New("patterns", CameraConfig{Width: 24, Height: 16})
	require.NoError(t, err)
	parallel.Threads = 4
	img2 := parallel.NewCanvas()
	_, err = parallel.Render(context.Background(), img2)
	require.NoError(t, err)

	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			if !img1.PixelAt(x, y).Equals(img2.PixelAt(x, y)) {
				t.Fatalf("Pixel (%d, %d) differs: %v vs %v", x, y, img1.PixelAt(x, y), img2.PixelAt(x, y))
			}
		}
	}
}

func TestDefaultScene_CenterHitsMiddleSphere(t *testing.T) {
	s := NewDefaultScene(CameraConfig{Width: 11, Height: 11})
	img := s.NewCanvas()
	_, err := s.Render(context.Background(), img)
	require.NoError(t, err)

	center := img.PixelAt(5, 5)
	assert.False(t, center.Equals(core.Black()))
	assert.Greater(t, center.G, center.R, "middle sphere is green")
}

func TestNewSceneFromDescription(t *testing.T) {
	desc, err := loaders.ParseScene(loaders.ExampleSceneFile)
	require.NoError(t, err)

	s, err := NewSceneFromDescription("example", desc)
	require.NoError(t, err)

	assert.Equal(t, "example", s.Name)
	assert.Equal(t, 400, s.Camera.HSize())
	assert.Equal(t, 300, s.Camera.VSize())
	assert.Equal(t, 5, s.World.Config.MaxDepth)
	require.Equal(t, 2, s.World.ObjectCount())
	require.Equal(t, 1, s.World.LightCount())
	assert.Equal(t, lights.LightTypePoint, s.World.Light(0).Type())

	ball := s.World.Object(0)
	assert.Equal(t, 0.1, ball.Material.Reflective)
	assert.True(t, ball.Material.Color.Equals(core.NewColor(220.0/255, 20.0/255, 60.0/255)))
	assert.True(t, ball.Transform().Equals(core.Translation(0, 0.5, 0).Multiply(core.Scaling(0.5, 0.5, 0.5))))

	floor := s.World.Object(1)
	_, isChecker := floor.Material.Pattern.(*material.CheckerPattern)
	assert.True(t, isChecker)
	assert.Equal(t, 0.0, floor.Material.Specular)
	assert.Equal(t, 0.9, floor.Material.Diffuse, "unset fields keep the default material")
}

func TestNewSceneFromDescription_SpotAndGlass(t *testing.T) {
	desc, err := loaders.ParseScene(`
[camera]
from = 0 0 -5
to = 0 0 0

[light "spot"]
type = spot
position = 0 5 0
target = 0 0 0
coneangle = 20

[material "water"]
preset = glass
refractiveindex = 1.333
pattern = stripe
perturb = 0.2

[object "drop"]
shape = sphere
radius = 0.5
material = water
`)
	require.NoError(t, err)

	s, err := NewSceneFromDescription("drops", desc)
	require.NoError(t, err)

	assert.Equal(t, lights.LightTypeSpot, s.World.Light(0).Type())

	drop := s.World.Object(0)
	assert.Equal(t, 1.0, drop.Material.Transparency)
	assert.Equal(t, 1.333, drop.Material.RefractiveIndex)
	_, perturbed := drop.Material.Pattern.(*material.PerturbedPattern)
	assert.True(t, perturbed)

	// radius 0.5 sphere: a ray down the z axis hits at z = -0.5
	xs := drop.Intersect(core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(0, 0, 1)))
	require.Len(t, xs, 2)
	assert.InDelta(t, 4.5, xs[0].T, 1e-9)
}

func TestNewSceneFromDescription_MaxDepth(t *testing.T) {
	base := `
[camera]
from = 0 0 -5
to = 0 0 0

[light "key"]
position = -10 10 -10
`
	tests := []struct {
		name     string
		render   string
		expected int
	}{
		{"unset keeps the default", "", world.DefaultConfig().MaxDepth},
		{"zero disables bounces", "[render]\nmaxdepth = 0\n", 0},
		{"explicit depth", "[render]\nmaxdepth = 2\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := loaders.ParseScene(base + tt.render)
			require.NoError(t, err)
			s, err := NewSceneFromDescription("depth", desc)
			require.NoError(t, err)
			if s.World.Config.MaxDepth != tt.expected {
				t.Errorf("Expected max depth %d, got %d", tt.expected, s.World.Config.MaxDepth)
			}
		})
	}
}

func TestNewFileScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny-room.ini")
	require.NoError(t, os.WriteFile(path, []byte(loaders.ExampleSceneFile), 0o644))

	s, err := NewFileScene(path, CameraConfig{Width: 8, Height: 6})
	require.NoError(t, err)
	assert.Equal(t, "tiny-room", s.Name)
	assert.Equal(t, 8, s.Camera.HSize())

	s, err = New(path)
	require.NoError(t, err)
	assert.Equal(t, 400, s.Camera.HSize())

	_, err = NewFileScene(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestRepositorySceneFilesLoad(t *testing.T) {
	scenes, err := ListFileScenes()
	require.NoError(t, err)

	for _, info := range scenes {
		t.Run(info.ID, func(t *testing.T) {
			s, err := New(info.ID, CameraConfig{Width: 4, Height: 3})
			require.NoError(t, err)
			assert.NoError(t, s.Validate())
		})
	}
}
