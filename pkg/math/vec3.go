// Package math provides the small vector and matrix types the renderer works in.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector. It doubles as an RGB color, with components in [0,1] by convention.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lift returns v with dz added to its Z component.
func (v Vec3) Lift(dz float32) Vec3 {
	return Vec3{v.X, v.Y, v.Z + dz}
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return math32.Abs(v.X-other.X) <= eps &&
		math32.Abs(v.Y-other.Y) <= eps &&
		math32.Abs(v.Z-other.Z) <= eps
}
