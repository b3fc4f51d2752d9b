package slime

import "math"

// probeAngle is the sensor offset from the heading, 45 degrees.
const probeAngle = math.Pi / 4

// Agent is a single slime cell. Pos is free-ranging; wrapping happens at
// lookup time and after each move.
type Agent struct {
	Pos Vec2
	Vel Vec2
}

// Probes are the trail intensities seen by an agent.
type Probes struct {
	Forward float32
	Left    float32
	Right   float32
}

// MoveBy integrates one Euler step of length dt and wraps the result.
func (a Agent) MoveBy(dt float32, t Trail) Agent {
	return Agent{
		Pos: t.WrapCoord(a.Pos.Add(a.Vel.Scale(dt))),
		Vel: a.Vel,
	}
}

func (a Agent) leftVel() Vec2  { return a.Vel.Rotate(-probeAngle) }
func (a Agent) rightVel() Vec2 { return a.Vel.Rotate(probeAngle) }

// Sense reads the trail one velocity ahead, straight and at -/+45 degrees.
func (a Agent) Sense(t Trail) Probes {
	return Probes{
		Forward: t.GetWrapped(a.Pos.Add(a.Vel)),
		Left:    t.GetWrapped(a.Pos.Add(a.leftVel())),
		Right:   t.GetWrapped(a.Pos.Add(a.rightVel())),
	}
}

// Steer turns toward the strongest probe. Forward wins every tie and left
// wins a tie against right. Position is unchanged.
func (a Agent) Steer(t Trail) Agent {
	p := a.Sense(t)
	vel := a.Vel
	if p.Forward >= p.Left {
		if p.Forward < p.Right {
			vel = a.rightVel()
		}
	} else {
		if p.Left >= p.Right {
			vel = a.leftVel()
		} else {
			vel = a.rightVel()
		}
	}
	return Agent{Pos: a.Pos, Vel: vel}
}
