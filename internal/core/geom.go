// Package core provides fundamental types and utilities for the sandbox.
// It contains no external dependencies (especially no Bubble Tea) to keep
// world logic pure and testable.
package core

import "math"

// Vec2 is a 2D float vector used for entity positions and velocities.
// Entity space has its origin at the bottom-left of the world, Y up.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Div returns v divided component-wise by d.
func (v Vec2) Div(d float64) Vec2 {
	return Vec2{X: v.X / d, Y: v.Y / d}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// SnapZero returns 0 when |x| is below eps, x otherwise.
func SnapZero(x, eps float64) float64 {
	if math.Abs(x) < eps {
		return 0
	}
	return x
}
