package canvas

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of linear colors. Concurrent writes to
// distinct pixels are safe; reads must wait until writers are done.
type Canvas struct {
	width, height int
	pixels        []core.Color // Row-major: pixels[y*width + x]
}

// New creates a black canvas
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// WritePixel sets one pixel. Out-of-range coordinates are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// PixelAt returns one pixel, or black when out of range
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black()
	}
	return c.pixels[y*c.width+x]
}

// Fill sets every pixel to color
func (c *Canvas) Fill(color core.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// ToImage converts the canvas to a clamped 8-bit image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, c.pixels[y*c.width+x].RGBA())
		}
	}
	return img
}
