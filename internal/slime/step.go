package slime

// Step advances one tick: every agent steers against t, moves by dt, and
// deposits into a copy of t. Neither input is modified.
func Step(c Colony, t Trail, dt float32) (Colony, Trail) {
	c = c.SteerAll(t)
	c = c.MoveAll(dt, t)
	return c, c.DepositOn(t)
}
