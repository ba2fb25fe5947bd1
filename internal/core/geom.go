// Package core provides fundamental value types shared across the engine:
// 2D ground-plane coordinates and the normalized command vocabulary.
// It contains no external dependencies to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or direction on the ground plane. X runs left/right,
// Z runs back/forward, matching the listener's default orientation.
type Vec2 struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Z: v.Z * s}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Unit directions used for movement steps and listener headings.
var (
	DirLeft    = Vec2{X: -1, Z: 0}
	DirRight   = Vec2{X: 1, Z: 0}
	DirForward = Vec2{X: 0, Z: 1}
	DirBack    = Vec2{X: 0, Z: -1}
)

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
