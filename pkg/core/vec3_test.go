package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Approaching at 45 degrees",
			vector:   NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Slanted surface",
			vector:   NewVec3(0, -1, 0),
			normal:   NewVec3(math.Sqrt2/2, math.Sqrt2/2, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Head on",
			vector:   NewVec3(0, 0, 1),
			normal:   NewVec3(0, 0, -1),
			expected: NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_CrossIsAntiCommutative(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(2, 3, 4)

	if got := a.Cross(b); !got.Equals(NewVec3(-1, 2, -1)) {
		t.Errorf("Expected a×b = (-1, 2, -1), got %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVec3(1, -2, 1)) {
		t.Errorf("Expected b×a = (1, -2, 1), got %v", got)
	}
}

func TestVec3_NormalizeAndLength(t *testing.T) {
	v := NewVec3(1, 2, 3)
	n := v.Normalize()

	if math.Abs(v.Length()-math.Sqrt(14)) > 1e-12 {
		t.Errorf("Expected length sqrt(14), got %f", v.Length())
	}
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", got)
	}
}

func TestPoint3_Algebra(t *testing.T) {
	p := NewPoint3(3, 2, 1)
	q := NewPoint3(5, 6, 7)
	v := NewVec3(5, 6, 7)

	if got := p.Subtract(q); !got.Equals(NewVec3(-2, -4, -6)) {
		t.Errorf("point - point: expected (-2, -4, -6), got %v", got)
	}
	if got := p.SubtractVec(v); !got.Equals(NewPoint3(-2, -4, -6)) {
		t.Errorf("point - vector: expected (-2, -4, -6), got %v", got)
	}
	if got := p.Add(v); !got.Equals(NewPoint3(8, 8, 8)) {
		t.Errorf("point + vector: expected (8, 8, 8), got %v", got)
	}
	if !p.Tuple().IsPoint() || p.Tuple().IsVector() {
		t.Errorf("Expected point tuple to have w = 1, got %v", p.Tuple())
	}
	if !v.Tuple().IsVector() {
		t.Errorf("Expected vector tuple to have w = 0, got %v", v.Tuple())
	}
}

func TestFloatEquals_Tolerance(t *testing.T) {
	if !FloatEquals(1.0, 1.0+FloatEpsilon/2) {
		t.Errorf("Expected values within half an epsilon to be equal")
	}
	if FloatEquals(1.0, 1.0+FloatEpsilon*2) {
		t.Errorf("Expected values two epsilons apart to differ")
	}
}
