package slime

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrPopulationMismatch is returned when a colony is built from the wrong number of agents.
var ErrPopulationMismatch = errors.New("agent count does not match population size")

// parallelThreshold is the population below which per-agent passes stay on
// the calling goroutine.
const parallelThreshold = 2048

// Colony is a fixed-size population. Its length is set at construction and
// every transform returns a new Colony of the same length.
type Colony struct {
	agents []Agent
}

// NewColony copies agents into a colony of the declared size.
func NewColony(size int, agents []Agent) (Colony, error) {
	if len(agents) != size {
		return Colony{}, fmt.Errorf("%w: want %d, got %d", ErrPopulationMismatch, size, len(agents))
	}
	c := Colony{agents: make([]Agent, size)}
	copy(c.agents, agents)
	return c, nil
}

// MustColony is NewColony that panics on a size mismatch.
func MustColony(size int, agents []Agent) Colony {
	c, err := NewColony(size, agents)
	if err != nil {
		panic(err)
	}
	return c
}

// SpawnRandom places count unit-speed agents uniformly in [0, bound) with
// uniformly random headings.
func SpawnRandom(count int, bound float32, rng *rand.Rand) Colony {
	agents := make([]Agent, count)
	ref := Vec2{X: 1, Y: 0}
	for i := range agents {
		pos := Vec2{X: rng.Float32() * bound, Y: rng.Float32() * bound}
		if pos.X >= bound {
			pos.X = 0
		}
		if pos.Y >= bound {
			pos.Y = 0
		}
		heading := rng.Float64() * 360
		agents[i] = Agent{Pos: pos, Vel: ref.Rotate(heading * math.Pi / 180)}
	}
	return Colony{agents: agents}
}

// Len returns the population size.
func (c Colony) Len() int { return len(c.agents) }

// Agent returns the i-th agent.
func (c Colony) Agent(i int) Agent { return c.agents[i] }

// Agents returns a copy of the population in order.
func (c Colony) Agents() []Agent {
	out := make([]Agent, len(c.agents))
	copy(out, c.agents)
	return out
}

// SteerAll steers every agent against the same trail snapshot.
func (c Colony) SteerAll(t Trail) Colony {
	return c.mapAgents(func(a Agent) Agent { return a.Steer(t) })
}

// MoveAll moves every agent by dt.
func (c Colony) MoveAll(dt float32, t Trail) Colony {
	return c.mapAgents(func(a Agent) Agent { return a.MoveBy(dt, t) })
}

// DepositOn returns a copy of t with +1 at the cell under every agent.
// The cell index is wrapped the same way GetWrapped wraps it.
func (c Colony) DepositOn(t Trail) Trail {
	out := t.Clone()
	for _, a := range c.agents {
		out.cells[out.index(a.Pos)] += 1.0
	}
	return out
}

func (c Colony) mapAgents(fn func(Agent) Agent) Colony {
	out := make([]Agent, len(c.agents))
	if len(c.agents) < parallelThreshold {
		for i, a := range c.agents {
			out[i] = fn(a)
		}
		return Colony{agents: out}
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(c.agents) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(c.agents); lo += chunk {
		hi := min(lo+chunk, len(c.agents))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = fn(c.agents[i])
			}
			return nil
		})
	}
	// chunks only write their own slots and never return an error
	_ = g.Wait()
	return Colony{agents: out}
}
