package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a render
type RenderStats struct {
	Width         int           // Camera width in pixels
	Height        int           // Camera height in pixels
	TotalPixels   int           // Pixels scheduled
	PixelsWritten int           // Pixels actually shaded (less than TotalPixels when stopped)
	Threads       int           // Worker threads used
	Duration      time.Duration // Wall-clock time from scheduling to join
}

// Complete reports whether every scheduled pixel was written
func (s RenderStats) Complete() bool {
	return s.PixelsWritten == s.TotalPixels
}

// PixelsPerSecond returns the shading throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.PixelsWritten) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d/%d pixels on %d threads in %v (%.0f px/s)",
		s.Width, s.Height, s.PixelsWritten, s.TotalPixels, s.Threads, s.Duration.Round(time.Millisecond), s.PixelsPerSecond())
}
