// Package math provides the vector, matrix and quaternion types used for
// vehicle geometry. All values are float64 scene units (meters).
package math

import "math"

// Vec2 is a 2D vector. The tire deformer uses it for the plane
// perpendicular to the wheel axis.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// PointAlong returns the point at distance length from v along the ray
// towards target. If target equals v the result is v.
func (v Vec2) PointAlong(target Vec2, length float64) Vec2 {
	return v.Add(target.Sub(v).Normalize().Scale(length))
}
