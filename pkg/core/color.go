package core

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is a linear RGB triple. Components are unbounded until Clamp.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns (0, 0, 0)
func Black() Color { return Color{} }

// White returns (1, 1, 1)
func White() Color { return Color{1, 1, 1} }

// ColorFromRGBA converts an 8-bit color to linear floats in [0, 1]
func ColorFromRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply scales every component
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the Hadamard (component-wise) product
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp limits every component to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: mgl64.Clamp(c.R, 0, 1),
		G: mgl64.Clamp(c.G, 0, 1),
		B: mgl64.Clamp(c.B, 0, 1),
	}
}

// Bytes returns the clamped components scaled to [0, 255]
func (c Color) Bytes() (r, g, b uint8) {
	clamped := c.Clamp()
	return uint8(math.Round(clamped.R * 255)), uint8(math.Round(clamped.G * 255)), uint8(math.Round(clamped.B * 255))
}

// RGBA returns the clamped, opaque 8-bit color
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Equals compares two colors component-wise within FloatEpsilon
func (c Color) Equals(other Color) bool {
	return FloatEquals(c.R, other.R) && FloatEquals(c.G, other.G) && FloatEquals(c.B, other.B)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g)", c.R, c.G, c.B)
}
