// Package slime holds the Physarum core: agents moving over a toroidal
// trail field, sensing it at three forward probes and depositing into it.
//
// Every operation is a pure transform. A tick is Steer -> Move -> Deposit,
// see Step.
package slime

import "math"

// Vec2 is an immutable 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + b.
func (v Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: v.X + b.X, Y: v.Y + b.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float32) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Rotate turns v by theta radians, counter-clockwise positive.
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	x, y := float64(v.X), float64(v.Y)
	return Vec2{
		X: float32(x*cos - y*sin),
		Y: float32(x*sin + y*cos),
	}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}
