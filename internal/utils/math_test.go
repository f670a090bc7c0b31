package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{"two places", 33.33333, 2, 33.33},
		{"rounds half up", 2.675001, 2, 2.68},
		{"zero places", 9.6, 0, 10},
		{"already exact", 5, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundTo(tt.value, tt.places), 1e-9)
		})
	}
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 25.0, Percent(1, 4), 1e-9)
	assert.Equal(t, 0.0, Percent(1, 0))
	assert.Equal(t, 0.0, Percent(1, -3))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0, 50, 200))
	assert.Equal(t, 50, ClampLimit(-1, 50, 200))
	assert.Equal(t, 10, ClampLimit(10, 50, 200))
	assert.Equal(t, 200, ClampLimit(999, 50, 200))
}
