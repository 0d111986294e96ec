package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the renderer's point, direction and linear RGB color type
type Vec3 = mgl64.Vec3

// Vec2 holds pairs of samples and surface coordinates
type Vec2 = mgl64.Vec2

// nearZeroEpsilon bounds every component of a vector considered degenerate
const nearZeroEpsilon = 1e-8

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// MulVec returns the component-wise product of two vectors
func MulVec(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Unit returns v scaled to unit length, or the zero vector when v has no length.
// mgl64's Normalize divides by zero in that case.
func Unit(v Vec3) Vec3 {
	length := v.Len()
	if length == 0 {
		return Vec3{}
	}
	return v.Mul(1.0 / length)
}

// NearZero reports whether every component of v is within a tiny epsilon of zero
func NearZero(v Vec3) bool {
	return math.Abs(v[0]) < nearZeroEpsilon &&
		math.Abs(v[1]) < nearZeroEpsilon &&
		math.Abs(v[2]) < nearZeroEpsilon
}

// IsFinite reports whether no component of v is NaN or infinite
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Lerp linearly interpolates from a (t=0) to b (t=1)
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Mul(1.0 - t).Add(b.Mul(t))
}

// MinVec returns the component-wise minimum of two vectors
func MinVec(a, b Vec3) Vec3 {
	return Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

// MaxVec returns the component-wise maximum of two vectors
func MaxVec(a, b Vec3) Vec3 {
	return Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

// MaxComponent returns the largest component of v
func MaxComponent(v Vec3) float64 {
	return math.Max(v[0], math.Max(v[1], v[2]))
}

// Ray represents a ray with an origin, a direction and an emission time
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64 // Shutter time the ray was emitted at (motion blur)
}

// NewRay creates a new ray emitted at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAt creates a new ray emitted at the given shutter time
func NewRayAt(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
