package slime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentMoveBy(t *testing.T) {
	tr := NewTrail(3)

	a := Agent{Pos: Vec2{X: 0, Y: 0}, Vel: Vec2{X: 0, Y: 1}}
	assert.Equal(t, Agent{Pos: Vec2{X: 0, Y: 1}, Vel: Vec2{X: 0, Y: 1}}, a.MoveBy(1.0, tr))

	half := Agent{Pos: Vec2{X: 0, Y: 0}, Vel: Vec2{X: 1, Y: 1}}
	assert.Equal(t, Agent{Pos: Vec2{X: 0.5, Y: 0.5}, Vel: Vec2{X: 1, Y: 1}}, half.MoveBy(0.5, tr))

	edge := Agent{Pos: Vec2{X: 2.5, Y: 0.25}, Vel: Vec2{X: 1, Y: -1}}
	moved := edge.MoveBy(1.0, tr)
	assert.InDelta(t, 0.5, moved.Pos.X, 1e-6)
	assert.InDelta(t, 2.25, moved.Pos.Y, 1e-6)
	assert.Equal(t, edge.Vel, moved.Vel)
}

func TestAgentSense(t *testing.T) {
	tr := NewTrail(3)
	tr.Set(1, 1, 1) // forward
	tr.Set(1, 0, 2) // left
	tr.Set(0, 1, 3) // right

	a := Agent{Vel: Vec2{X: 1, Y: 1}}
	assert.Equal(t, Probes{Forward: 1, Left: 2, Right: 3}, a.Sense(tr))
}

func TestAgentSteer(t *testing.T) {
	diag := Vec2{X: 1, Y: 1}

	tests := []struct {
		name  string
		cells map[[2]int]float32
		want  Vec2
	}{
		{"all equal keeps heading", nil, diag},
		{"left signal", map[[2]int]float32{{1, 0}: 0.1}, Vec2{X: math.Sqrt2, Y: 0}},
		{"right signal", map[[2]int]float32{{0, 1}: 0.1}, Vec2{X: 0, Y: math.Sqrt2}},
		{"left beats right on tie", map[[2]int]float32{{1, 0}: 0.5, {0, 1}: 0.5}, Vec2{X: math.Sqrt2, Y: 0}},
		{"forward beats right on tie", map[[2]int]float32{{1, 1}: 0.5, {0, 1}: 0.5}, diag},
		{"forward beats left on tie", map[[2]int]float32{{1, 1}: 0.5, {1, 0}: 0.5}, diag},
		{"strongest right wins", map[[2]int]float32{{1, 1}: 0.2, {1, 0}: 0.3, {0, 1}: 0.4}, Vec2{X: 0, Y: math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrail(3)
			for xy, v := range tt.cells {
				tr.Set(xy[0], xy[1], v)
			}
			a := Agent{Pos: Vec2{X: 0, Y: 0}, Vel: diag}
			got := a.Steer(tr)

			assert.Equal(t, a.Pos, got.Pos)
			assert.InDelta(t, tt.want.X, got.Vel.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Vel.Y, 1e-6)
			assert.InDelta(t, diag.Len(), got.Vel.Len(), 1e-6)
		})
	}
}

func TestAgentSteerDoesNotWriteTrail(t *testing.T) {
	tr := NewTrail(4)
	tr.Set(2, 1, 7)
	before := tr.Checksum()

	Agent{Pos: Vec2{X: 1, Y: 1}, Vel: Vec2{X: 1, Y: 0}}.Steer(tr)
	assert.Equal(t, before, tr.Checksum())
}
