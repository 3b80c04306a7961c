package canvas

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AtomicCanvas stores 8-bit pixels that may be written by render workers
// while another goroutine reads them for display. Each pixel is packed as
// RGBA in one uint32, so a reader never sees a half-written pixel.
type AtomicCanvas struct {
	width  int
	height int
	pixels []atomic.Uint32
}

// NewAtomic creates a transparent canvas; unwritten pixels have zero alpha
func NewAtomic(width, height int) *AtomicCanvas {
	width, height = max(width, 0), max(height, 0)
	return &AtomicCanvas{
		width:  width,
		height: height,
		pixels: make([]atomic.Uint32, width*height),
	}
}

func (c *AtomicCanvas) Width() int  { return c.width }
func (c *AtomicCanvas) Height() int { return c.height }

// WritePixel stores the clamped color. Out-of-range writes are ignored.
func (c *AtomicCanvas) WritePixel(x, y int, color core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	r, g, b := color.Bytes()
	c.pixels[y*c.width+x].Store(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xff<<24)
}

// RGBAAt returns the stored pixel, or transparent black out of range
func (c *AtomicCanvas) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	return unpack(c.pixels[y*c.width+x].Load())
}

// CopyRGBA fills dst, which must hold 4*Width*Height bytes, with the
// current pixels in row-major RGBA order
func (c *AtomicCanvas) CopyRGBA(dst []byte) {
	n := min(len(dst)/4, len(c.pixels))
	for i := 0; i < n; i++ {
		p := c.pixels[i].Load()
		dst[4*i] = byte(p)
		dst[4*i+1] = byte(p >> 8)
		dst[4*i+2] = byte(p >> 16)
		dst[4*i+3] = byte(p >> 24)
	}
}

// ToImage snapshots the canvas
func (c *AtomicCanvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.CopyRGBA(img.Pix)
	return img
}

// Snapshot copies the pixels into a Canvas for encoding. Unwritten pixels
// come out black.
func (c *AtomicCanvas) Snapshot() *Canvas {
	out := New(c.width, c.height)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			out.WritePixel(x, y, core.ColorFromRGBA(c.RGBAAt(x, y)))
		}
	}
	return out
}

func unpack(p uint32) color.RGBA {
	return color.RGBA{R: byte(p), G: byte(p >> 8), B: byte(p >> 16), A: byte(p >> 24)}
}
