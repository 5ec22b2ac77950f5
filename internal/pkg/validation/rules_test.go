package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCGPA(t *testing.T) {
	assert.True(t, IsCGPA(0))
	assert.True(t, IsCGPA(7.5))
	assert.True(t, IsCGPA(10))
	assert.False(t, IsCGPA(-0.01))
	assert.False(t, IsCGPA(10.01))
}

func TestCGPATag(t *testing.T) {
	v := New()

	type grades struct {
		Lowest  float64  `validate:"cgpa"`
		Highest *float64 `validate:"omitempty,cgpa"`
		Rounded int      `validate:"cgpa"`
	}

	high := 9.5
	assert.NoError(t, v.Struct(grades{Lowest: 3.19, Highest: &high, Rounded: 8}))
	assert.NoError(t, v.Struct(grades{Lowest: 0}))

	over := 10.5
	assert.Error(t, v.Struct(grades{Lowest: 4, Highest: &over}))
	assert.Error(t, v.Struct(grades{Lowest: -1}))
	assert.Error(t, v.Struct(grades{Rounded: 11}))
}

func TestRegisterGinRules(t *testing.T) {
	require.NoError(t, RegisterGinRules())
}
