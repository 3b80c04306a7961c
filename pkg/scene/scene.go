package scene

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *world.World
	Camera       *renderer.Camera
	CameraConfig CameraConfig
	Threads      int // Render workers, 0 uses every CPU
}

// CameraConfig describes the camera a scene is viewed through
type CameraConfig struct {
	Width       int
	Height      int
	FieldOfView float64 // Horizontal/vertical extent of the longer side, in degrees
	From        core.Point3
	To          core.Point3
	Up          core.Vec3
}

// MergeCameraConfig applies the non-zero size and field of view of override
// on top of base. The eye placement always comes from base.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	return result
}

// NewCamera builds a renderer camera positioned by the config
func (c CameraConfig) NewCamera() *renderer.Camera {
	camera := renderer.NewCamera(c.Width, c.Height, mgl64.DegToRad(c.FieldOfView))
	camera.SetTransform(core.ViewTransform(c.From, c.To, c.Up))
	return camera
}

// newScene wires a world to a camera built from defaults plus any override
func newScene(name string, w *world.World, defaults CameraConfig, overrides ...CameraConfig) *Scene {
	config := defaults
	if len(overrides) > 0 {
		config = MergeCameraConfig(defaults, overrides[0])
	}
	return &Scene{
		Name:         name,
		World:        w,
		Camera:       config.NewCamera(),
		CameraConfig: config,
	}
}

// Validate checks the camera size and every material in the world
func (s *Scene) Validate() error {
	var errs []error
	if s.CameraConfig.Width <= 0 || s.CameraConfig.Height <= 0 {
		errs = append(errs, fmt.Errorf("scene %q: camera size %dx%d", s.Name, s.CameraConfig.Width, s.CameraConfig.Height))
	}
	if err := s.World.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scene %q: %w", s.Name, err))
	}
	return errors.Join(errs...)
}

// Resize changes the image size. The eye placement and field of view stay.
func (s *Scene) Resize(width, height int) {
	s.CameraConfig.Width = width
	s.CameraConfig.Height = height
	s.Camera.SetSize(width, height)
}

// GetPrimitiveCount returns the number of objects in the world
func (s *Scene) GetPrimitiveCount() int {
	return s.World.ObjectCount()
}

// NewCanvas returns a black canvas matching the camera size
func (s *Scene) NewCanvas() *canvas.Canvas {
	return canvas.New(s.Camera.HSize(), s.Camera.VSize())
}

// Render traces the scene into img with the scene's thread count
func (s *Scene) Render(ctx context.Context, img renderer.Image) (renderer.RenderStats, error) {
	return s.Camera.RenderContext(ctx, s.World, img, s.Threads)
}
