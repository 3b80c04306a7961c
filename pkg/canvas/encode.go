package canvas

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxPPMLineLength is the longest line the plain PPM format allows
const maxPPMLineLength = 70

// WritePPM writes the canvas as a plain (P3) PPM with 8-bit samples.
// Each image row starts on a new line and no line exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLength := 0
		for x := 0; x < c.width; x++ {
			r, g, b := c.pixels[y*c.width+x].Bytes()
			for _, sample := range [3]uint8{r, g, b} {
				token := strconv.Itoa(int(sample))
				switch {
				case lineLength == 0:
				case lineLength+1+len(token) > maxPPMLineLength:
					bw.WriteByte('\n')
					lineLength = 0
				default:
					bw.WriteByte(' ')
					lineLength++
				}
				bw.WriteString(token)
				lineLength += len(token)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ToPPM returns the PPM encoding as a string
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	c.WritePPM(&sb) // strings.Builder never fails
	return sb.String()
}

// WritePNG writes the canvas as an 8-bit PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// SaveFile writes the canvas to path, choosing PPM or PNG by extension
func (c *Canvas) SaveFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".ppm" && ext != ".png" {
		return fmt.Errorf("unsupported image format %q (want .ppm or .png)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	if ext == ".ppm" {
		err = c.WritePPM(file)
	} else {
		err = c.WritePNG(file)
	}
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return file.Close()
}
