package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Scene computes the color seen along a ray. Implementations must be safe
// for concurrent use; every render thread calls ColorAt.
type Scene interface {
	ColorAt(ray core.Ray) core.Color
}

// Image receives rendered pixels. Render threads write disjoint pixels
// concurrently, so WritePixel must not share state between pixels.
// Out-of-range writes must be ignored.
type Image interface {
	WritePixel(x, y int, c core.Color)
	Width() int
	Height() int
}
