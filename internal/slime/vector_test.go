package slime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: -0.5, Y: 4}

	assert.Equal(t, Vec2{X: 0.5, Y: 6}, a.Add(b))
	assert.Equal(t, Vec2{X: 2, Y: 4}, a.Scale(2))
	assert.Equal(t, Vec2{X: 1, Y: 2}, a, "operands must not change")
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2
		theta float64
		want  Vec2
	}{
		{"quarter turn", Vec2{X: 1, Y: 0}, math.Pi / 2, Vec2{X: 0, Y: 1}},
		{"minus 45 of diagonal", Vec2{X: 1, Y: 1}, -math.Pi / 4, Vec2{X: math.Sqrt2, Y: 0}},
		{"plus 45 of diagonal", Vec2{X: 1, Y: 1}, math.Pi / 4, Vec2{X: 0, Y: math.Sqrt2}},
		{"half turn", Vec2{X: 0, Y: 2}, math.Pi, Vec2{X: 0, Y: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Rotate(tt.theta)
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
			assert.InDelta(t, tt.in.Len(), got.Len(), 1e-6)
		})
	}
}
