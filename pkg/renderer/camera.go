package renderer

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	// ErrAlreadyRendering is returned when Render is called while another
	// render on the same camera is still running
	ErrAlreadyRendering = errors.New("camera is already rendering")

	// ErrRenderStopped is returned when StopRender or a cancelled context
	// ends a render before every pixel was written
	ErrRenderStopped = errors.New("render stopped")
)

// Camera maps an image plane one unit in front of the eye onto a canvas of
// hsize x vsize pixels. The eye looks down -z in camera space; the transform
// is a view transform from world space into camera space.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64 // Horizontal or vertical, whichever axis is longer (radians)
	transform   core.Matrix
	inverse     core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64

	logger core.Logger

	mu      sync.Mutex  // Guards pool
	pool    *ThreadPool // Non-nil while a render is running
	written atomic.Int64
	total   atomic.Int64
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
		transform:   core.Identity4(),
		inverse:     core.Identity4(),
		logger:      core.NopLogger{},
	}
	c.updatePixelSize()
	return c
}

// SetLogger sets where render start and finish messages go
func (c *Camera) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	c.logger = logger
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fieldOfView }

// PixelSize returns the world-space size of one pixel on the image plane
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetSize changes the canvas size. Must not be called during a render.
func (c *Camera) SetSize(hsize, vsize int) {
	c.hsize = hsize
	c.vsize = vsize
	c.updatePixelSize()
}

// SetFieldOfView changes the field of view. Must not be called during a render.
func (c *Camera) SetFieldOfView(fieldOfView float64) {
	c.fieldOfView = fieldOfView
	c.updatePixelSize()
}

// SetTransform changes the view transform. Must not be called during a render.
func (c *Camera) SetTransform(transform core.Matrix) {
	c.transform = transform
	c.inverse = transform.Inverse()
}

func (c *Camera) updatePixelSize() {
	if c.hsize <= 0 || c.vsize <= 0 {
		c.halfWidth, c.halfHeight, c.pixelSize = 0, 0, 0
		return
	}

	halfView := math.Tan(c.fieldOfView / 2)
	aspect := float64(c.hsize) / float64(c.vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(c.hsize)
}

// RayForPixel returns the world-space ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// +x is to the left because the camera looks down -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyPoint(core.NewPoint3(worldX, worldY, -1))
	origin := c.inverse.MultiplyPoint(core.Origin())
	return core.NewRay(origin, pixel.Subtract(origin).Normalize())
}

// Render shades every pixel of the camera's canvas into img using
// threadCount workers. 0 uses every CPU; a negative count leaves that many
// CPUs free. Render blocks until the image is finished or stopped.
func (c *Camera) Render(scene Scene, img Image, threadCount int) (RenderStats, error) {
	return c.RenderContext(context.Background(), scene, img, threadCount)
}

// RenderContext is Render with cancellation: when ctx is done the render
// stops as if StopRender had been called.
func (c *Camera) RenderContext(ctx context.Context, scene Scene, img Image, threadCount int) (RenderStats, error) {
	threads := resolveThreadCount(threadCount)

	c.mu.Lock()
	if c.pool != nil {
		c.mu.Unlock()
		return RenderStats{}, ErrAlreadyRendering
	}
	pool := NewThreadPool(threads)
	c.pool = pool
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.pool = nil
		c.mu.Unlock()
	}()

	stopWatching := context.AfterFunc(ctx, pool.Cancel)
	defer stopWatching()

	width, height := c.hsize, c.vsize
	total := max(width, 0) * max(height, 0)
	stats := RenderStats{Width: width, Height: height, TotalPixels: total, Threads: threads}
	c.written.Store(0)
	c.total.Store(int64(total))

	c.logger.Printf("Rendering %dx%d on %d threads...\n", width, height, threads)
	start := time.Now()

	// Shuffled order spreads early progress over the whole image
	order := rand.Perm(total)
	for _, index := range order {
		x, y := index%width, index/width
		pool.Enqueue(func() {
			img.WritePixel(x, y, scene.ColorAt(c.RayForPixel(x, y)))
			c.written.Add(1)
		})
	}
	pool.Close()

	stats.Duration = time.Since(start)
	stats.PixelsWritten = int(c.written.Load())

	if pool.Cancelled() && !stats.Complete() {
		c.logger.Printf("Render stopped after %d of %d pixels\n", stats.PixelsWritten, total)
		if err := ctx.Err(); err != nil {
			return stats, errors.Join(ErrRenderStopped, err)
		}
		return stats, ErrRenderStopped
	}

	c.logger.Printf("Render completed: %v\n", stats)
	return stats, nil
}

// StopRender cancels the render in progress, if any. Pixels already being
// shaded are finished; the rest are skipped.
func (c *Camera) StopRender() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pool != nil {
		c.pool.Cancel()
	}
}

// IsRendering reports whether a render is in progress
func (c *Camera) IsRendering() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pool != nil
}

// Progress returns the fraction of pixels written by the current or most
// recent render, in [0, 1]
func (c *Camera) Progress() float64 {
	total := c.total.Load()
	if total == 0 {
		return 0
	}
	return float64(c.written.Load()) / float64(total)
}

func resolveThreadCount(threadCount int) int {
	if threadCount == 0 {
		return runtime.NumCPU()
	}
	if threadCount < 0 {
		return max(runtime.NumCPU()+threadCount, 1)
	}
	return threadCount
}
