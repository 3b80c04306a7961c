package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_New(t *testing.T) {
	c := New(10, 20)
	assert.Equal(t, 10, c.Width())
	assert.Equal(t, 20, c.Height())
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			if !c.PixelAt(x, y).Equals(core.Black()) {
				t.Fatalf("Expected black at (%d, %d)", x, y)
			}
		}
	}
}

func TestCanvas_WritePixel(t *testing.T) {
	c := New(10, 20)
	red := core.NewColor(1, 0, 0)

	c.WritePixel(2, 3, red)
	assert.True(t, c.PixelAt(2, 3).Equals(red))

	// out of range writes and reads are harmless
	c.WritePixel(-1, 0, red)
	c.WritePixel(10, 0, red)
	c.WritePixel(0, 20, red)
	assert.True(t, c.PixelAt(10, 0).Equals(core.Black()))
	assert.True(t, c.PixelAt(-1, -1).Equals(core.Black()))
}

func TestCanvas_PPMHeader(t *testing.T) {
	ppm := New(5, 3).ToPPM()
	lines := strings.Split(ppm, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"P3", "5 3", "255"}, lines[:3])
}

func TestCanvas_PPMPixelData(t *testing.T) {
	c := New(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.ToPPM(), "\n")
	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	assert.Equal(t, expected, lines[3:6])
}

func TestCanvas_PPMSplitsLongLines(t *testing.T) {
	c := New(10, 2)
	c.Fill(core.NewColor(1, 0.8, 0.6))

	lines := strings.Split(c.ToPPM(), "\n")
	expected := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	assert.Equal(t, expected, lines[3:7])

	for i, line := range lines {
		if len(line) > maxPPMLineLength {
			t.Errorf("Line %d is %d characters long", i, len(line))
		}
	}
}

func TestCanvas_PPMEndsWithNewline(t *testing.T) {
	ppm := New(5, 3).ToPPM()
	assert.True(t, strings.HasSuffix(ppm, "\n"))
}

func TestCanvas_WritePNG(t *testing.T) {
	c := New(3, 2)
	c.WritePixel(1, 1, core.NewColor(0.5, 1, 2))

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{128, 255, 255, 255}, color.RGBAModel.Convert(img.At(1, 1)))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, color.RGBAModel.Convert(img.At(0, 0)))
}

func TestCanvas_SaveFile(t *testing.T) {
	dir := t.TempDir()
	c := New(4, 4)
	c.Fill(core.White())

	ppmPath := filepath.Join(dir, "out.ppm")
	require.NoError(t, c.SaveFile(ppmPath))
	data, err := os.ReadFile(ppmPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n4 4\n255\n"))

	pngPath := filepath.Join(dir, "out.png")
	require.NoError(t, c.SaveFile(pngPath))
	_, err = os.Stat(pngPath)
	assert.NoError(t, err)

	assert.Error(t, c.SaveFile(filepath.Join(dir, "out.bmp")))
}
