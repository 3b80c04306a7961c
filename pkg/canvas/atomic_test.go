package canvas

import (
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestAtomicCanvas_WriteAndRead(t *testing.T) {
	c := NewAtomic(4, 3)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())

	assert.Equal(t, color.RGBA{}, c.RGBAAt(1, 1), "unwritten pixels are transparent")

	c.WritePixel(1, 1, core.NewColor(1, 0.5, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, c.RGBAAt(1, 1))

	c.WritePixel(2, 2, core.NewColor(1.5, -0.2, 0.25))
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 64, A: 255}, c.RGBAAt(2, 2), "colors are clamped")
}

func TestAtomicCanvas_OutOfRange(t *testing.T) {
	c := NewAtomic(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		c.WritePixel(p[0], p[1], core.White())
		assert.Equal(t, color.RGBA{}, c.RGBAAt(p[0], p[1]))
	}

	empty := NewAtomic(-3, 5)
	assert.Equal(t, 0, empty.Width())
	empty.WritePixel(0, 0, core.White())
}

func TestAtomicCanvas_CopyRGBA(t *testing.T) {
	c := NewAtomic(2, 1)
	c.WritePixel(0, 0, core.NewColor(1, 0, 0))
	c.WritePixel(1, 0, core.NewColor(0, 0, 1))

	buf := make([]byte, 8)
	c.CopyRGBA(buf)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 0, 255, 255}, buf)

	img := c.ToImage()
	require.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(1, 0))
}

func TestAtomicCanvas_Snapshot(t *testing.T) {
	c := NewAtomic(2, 1)
	c.WritePixel(0, 0, core.NewColor(1, 0.5, 0))

	snap := c.Snapshot()
	r, g, b := snap.PixelAt(0, 0).Bytes()
	assert.Equal(t, [3]uint8{255, 128, 0}, [3]uint8{r, g, b})
	assert.True(t, snap.PixelAt(1, 0).Equals(core.Black()))
}

func TestAtomicCanvas_ConcurrentWrites(t *testing.T) {
	const size = 32
	c := NewAtomic(size, size)

	var wg sync.WaitGroup
	for row := 0; row < size; row++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := 0; x < size; x++ {
				c.WritePixel(x, row, core.White())
			}
		}()
	}
	// reader runs alongside the writers
	buf := make([]byte, 4*size*size)
	c.CopyRGBA(buf)
	wg.Wait()

	img := c.ToImage()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("Expected white at (%d, %d), got %v", x, y, img.RGBAAt(x, y))
			}
		}
	}
}
