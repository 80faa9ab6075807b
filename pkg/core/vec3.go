// Package core provides the vector math, geometric primitives, and random
// sampling utilities shared by every other package in the path tracer.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component double-precision vector. It is also used to
// represent points and linear RGB colors depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is an alias for Vec3 used where a value represents a position.
type Point3 = Vec3

// Color is an alias for Vec3 used where a value represents a linear RGB color.
type Color = Vec3

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(t float64) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Divide returns the vector divided by a scalar.
func (v Vec3) Divide(t float64) Vec3 {
	return v.Multiply(1.0 / t)
}

// Negate returns the vector with all components negated.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns a unit vector in the same direction. The zero vector maps
// to itself rather than producing NaN.
func (v Vec3) Unit() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Divide(length)
}

// NearZero reports whether all components are within 1e-8 of zero, the
// threshold used to detect degenerate scatter directions.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Reflect returns v reflected about a surface with the given unit normal.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract returns the refraction of a unit vector uv across a surface with
// unit normal n and ratio of refractive indices etaiOverEtat (Snell's law).
func (uv Vec3) Refract(n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Clamp returns a vector with each component clamped to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// Luminance returns the perceptual luminance of a linear RGB color using
// Rec. 709 weights.
func (v Vec3) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}
