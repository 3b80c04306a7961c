// Command viewer renders a scene in the background and shows the image
// filling in as the render workers finish pixels. Esc or closing the window
// stops the render.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Viewer is the ebiten game that displays a render in progress
type Viewer struct {
	scene  *scene.Scene
	pixels *canvas.AtomicCanvas
	frame  *ebiten.Image
	buffer []byte
	title  string
	stop   context.CancelFunc
	done   chan struct{}
}

func NewViewer(s *scene.Scene, stop context.CancelFunc) *Viewer {
	w, h := s.Camera.HSize(), s.Camera.VSize()
	return &Viewer{
		scene:  s,
		pixels: canvas.NewAtomic(w, h),
		frame:  ebiten.NewImage(w, h),
		buffer: make([]byte, 4*w*h),
		title:  fmt.Sprintf("Whitted Raytracer - %s", s.Name),
		stop:   stop,
		done:   make(chan struct{}),
	}
}

// Render traces the scene into the viewer's pixels. It runs off the main
// thread while ebiten owns the window.
func (v *Viewer) Render(ctx context.Context) error {
	defer close(v.done)
	_, err := v.scene.Render(ctx, v.pixels)
	if errors.Is(err, renderer.ErrRenderStopped) {
		return nil
	}
	return err
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed() {
		v.stop()
		return ebiten.Termination
	}

	progress := v.scene.Camera.Progress()
	select {
	case <-v.done:
		ebiten.SetWindowTitle(fmt.Sprintf("%s (done)", v.title))
	default:
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%.0f%%)", v.title, progress*100))
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.pixels.CopyRGBA(v.buffer)
	v.frame.WritePixels(v.buffer)

	// stretch the render over the window
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(sw)/float64(v.pixels.Width()), float64(sh)/float64(v.pixels.Height()))
	screen.DrawImage(v.frame, op)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	sceneType := flag.String("scene", "default", "Scene ID, scene file name in scenes/, or path to a .ini file")
	width := flag.Int("width", 0, "Image width (0 uses the scene default)")
	height := flag.Int("height", 0, "Image height (0 uses the scene default)")
	threads := flag.Int("threads", -1, "Render threads (0 uses every CPU, negative leaves CPUs free)")
	scale := flag.Float64("scale", 1.5, "Window size relative to the image")
	save := flag.String("save", "", "Save the finished image to this .png or .ppm path")
	flag.Parse()

	s, err := scene.New(*sceneType, scene.CameraConfig{Width: *width, Height: *height})
	if err != nil {
		log.Printf("Error creating scene: %v", err)
		os.Exit(1)
	}
	s.Threads = *threads
	s.Camera.SetLogger(core.NewDefaultLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viewer := NewViewer(s, cancel)
	windowScale := *scale
	ebiten.SetWindowSize(int(float64(s.Camera.HSize())*windowScale), int(float64(s.Camera.VSize())*windowScale))
	ebiten.SetWindowTitle(viewer.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return viewer.Render(ctx)
	})

	// ebiten must own the main thread
	runErr := ebiten.RunGame(viewer)
	cancel()
	if err := g.Wait(); err != nil {
		log.Printf("Render error: %v", err)
		os.Exit(1)
	}
	if runErr != nil {
		log.Printf("Window error: %v", runErr)
		os.Exit(1)
	}

	if *save != "" {
		if err := viewer.pixels.Snapshot().SaveFile(*save); err != nil {
			log.Printf("Error saving image: %v", err)
			os.Exit(1)
		}
		log.Printf("Render saved as %s", *save)
	}
}
