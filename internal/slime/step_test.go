package slime

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepDeterministic(t *testing.T) {
	run := func() (Colony, Trail) {
		c := SpawnRandom(300, 48, rand.New(rand.NewSource(11)))
		tr := NewTrail(48)
		for i := 0; i < 50; i++ {
			c, tr = Step(c, tr, 1)
		}
		return c, tr
	}

	c1, t1 := run()
	c2, t2 := run()
	assert.Equal(t, c1.Agents(), c2.Agents())
	assert.Equal(t, t1.Checksum(), t2.Checksum())
	assert.Equal(t, float64(300*50), t1.Sum())
}

func TestStepOrder(t *testing.T) {
	tr := NewTrail(3)
	tr.Set(1, 0, 0.1)
	c := MustColony(1, []Agent{{Pos: Vec2{X: 0, Y: 0}, Vel: Vec2{X: 1, Y: 1}}})

	next, out := Step(c, tr, 1)
	a := next.Agent(0)
	// steered left to (sqrt2, 0), then moved one step along it
	assert.InDelta(t, 1.41421, a.Pos.X, 1e-4)
	assert.InDelta(t, 0, a.Pos.Y, 1e-4)
	assert.InDelta(t, 1.1, out.At(1, 0), 1e-6)
	assert.Equal(t, float32(0.1), tr.At(1, 0), "input trail is unchanged")
}

func TestStepNeverDecays(t *testing.T) {
	c := SpawnRandom(64, 16, rand.New(rand.NewSource(5)))
	tr := NewTrail(16)
	for i := 0; i < 40; i++ {
		prev := tr.Cells()
		c, tr = Step(c, tr, 1)
		cur := tr.Cells()
		require.Len(t, cur, len(prev))
		for j := range cur {
			require.GreaterOrEqual(t, cur[j], prev[j], "tick %d cell %d", i, j)
		}
	}
}
