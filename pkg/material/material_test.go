package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	assert.True(t, m.Color.Equals(core.White()))
	assert.Equal(t, 0.1, m.Ambient)
	assert.Equal(t, 0.9, m.Diffuse)
	assert.Equal(t, 0.9, m.Specular)
	assert.Equal(t, 200.0, m.Shininess)
	assert.Equal(t, 0.0, m.Reflective)
	assert.Equal(t, 0.0, m.Transparency)
	assert.Equal(t, 1.0, m.RefractiveIndex)
	assert.Nil(t, m.Pattern)
	assert.NoError(t, m.Validate())
}

func TestGlass(t *testing.T) {
	g := Glass()
	assert.Equal(t, 1.0, g.Transparency)
	assert.Equal(t, 1.5, g.RefractiveIndex)
	assert.False(t, g.Equals(DefaultMaterial()))
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *Material)
		valid  bool
	}{
		{"Default", func(m *Material) {}, true},
		{"Mirror", func(m *Material) { m.Reflective = 1 }, true},
		{"Too reflective", func(m *Material) { m.Reflective = 1.5 }, false},
		{"Negative transparency", func(m *Material) { m.Transparency = -0.1 }, false},
		{"Zero refractive index", func(m *Material) { m.RefractiveIndex = 0 }, false},
		{"Zero shininess", func(m *Material) { m.Shininess = 0 }, false},
		{"Negative diffuse", func(m *Material) { m.Diffuse = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			tt.modify(&m)
			err := m.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMaterial))
			}
		})
	}
}

func TestMaterial_ValidateReportsEveryProblem(t *testing.T) {
	m := DefaultMaterial()
	m.Reflective = 2
	m.Transparency = 2

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reflective")
	assert.Contains(t, err.Error(), "transparency")
}

func TestMaterial_EqualsComparesPatternIdentity(t *testing.T) {
	a := DefaultMaterial()
	b := DefaultMaterial()
	assert.True(t, a.Equals(b))

	stripes := NewStripePattern(core.White(), core.Black())
	a.Pattern = stripes
	assert.False(t, a.Equals(b))

	b.Pattern = stripes
	assert.True(t, a.Equals(b))

	b.Pattern = NewStripePattern(core.White(), core.Black())
	assert.False(t, a.Equals(b), "distinct pattern instances are different materials")
}
