package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	area := NewRect(3)

	tests := []struct {
		name  string
		point Vector
		want  bool
	}{
		{"origin", Vector{}, true},
		{"corner", Vector{X: 3, Y: -3}, true},
		{"past_east_edge", Vector{X: 4, Y: 0}, false},
		{"past_south_edge", Vector{X: 0, Y: -4}, false},
		{"far_outside", Vector{X: -127, Y: 127}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, area.Contains(tt.point))
		})
	}
}

func TestRect_OffCenter(t *testing.T) {
	area := Rect{Center: Vector{X: 120, Y: -120}, Radius: 10}

	assert.True(t, area.Contains(Vector{X: 127, Y: -128}))
	assert.False(t, area.Contains(Vector{X: 109, Y: -120}))
	assert.Equal(t, 21, area.Width())
}
