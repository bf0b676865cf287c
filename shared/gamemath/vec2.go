// Package gamemath holds the small pieces of 2D math shared by the update
// systems. It has no dependencies on ebitengine or donburi.
package gamemath

import "math"

// Vec2 is an immutable 2D vector. Every operation returns a new value.
type Vec2 struct {
	X, Y float32
}

var (
	Zero     = Vec2{}
	Centered = Vec2{X: 0.5, Y: 0.5}
)

func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// MulComponents multiplies a and b component-wise.
func (a Vec2) MulComponents(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Div divides both components by s. Dividing by zero yields the zero vector
// instead of Inf/NaN.
func (a Vec2) Div(s float32) Vec2 {
	if s == 0 {
		return Zero
	}
	return Vec2{a.X / s, a.Y / s}
}

func (a Vec2) Magnitude() float32 {
	return float32(math.Sqrt(float64(a.X*a.X + a.Y*a.Y)))
}

// Normalize returns a unit vector pointing the same way as a.
// The zero vector normalizes to itself.
func (a Vec2) Normalize() Vec2 {
	return a.Div(a.Magnitude())
}

// Lerp moves a toward b by t. t is not clamped.
func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Lerp interpolates between two scalars.
func Lerp(a, b, t float32) float32 {
	return (b-a)*t + a
}
