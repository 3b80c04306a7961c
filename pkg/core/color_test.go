package core

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Arithmetic(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	assert.True(t, c1.Add(c2).Equals(NewColor(1.6, 0.7, 1.0)))
	assert.True(t, c1.Subtract(c2).Equals(NewColor(0.2, 0.5, 0.5)))
	assert.True(t, NewColor(0.2, 0.3, 0.4).Multiply(2).Equals(NewColor(0.4, 0.6, 0.8)))
	assert.True(t, NewColor(1, 0.2, 0.4).MultiplyColor(NewColor(0.9, 1, 0.1)).Equals(NewColor(0.9, 0.2, 0.04)))
}

func TestColor_Bytes(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected color.RGBA
	}{
		{"Black", Black(), color.RGBA{0, 0, 0, 255}},
		{"White", White(), color.RGBA{255, 255, 255, 255}},
		{"Half rounds up", NewColor(0.5, 0.5, 0.5), color.RGBA{128, 128, 128, 255}},
		{"Out of range clamps", NewColor(1.5, -0.5, 0), color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.RGBA(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestColorFromRGBA(t *testing.T) {
	c := ColorFromRGBA(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	assert.InDelta(t, 1.0, c.R, 1e-12)
	assert.InDelta(t, 0.0, c.G, 1e-12)
	assert.InDelta(t, 0.2, c.B, 1e-12)
}
