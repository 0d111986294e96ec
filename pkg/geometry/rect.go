package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// rectThickness is the minimum slab width of a rectangle's bounding box
const rectThickness = 0.0001

// Plane selects the axis-aligned plane a rectangle lies in
type Plane uint8

const (
	PlaneXY Plane = iota // spans X and Y at constant Z
	PlaneXZ              // spans X and Z at constant Y
	PlaneYZ              // spans Y and Z at constant X
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "unknown"
	}
}

// axes returns the two in-plane axes and the constant axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	default:
		return 0, 1, 2
	}
}

// AARect is an axis-aligned rectangle spanning [A0, A1] x [B0, B1] on the
// plane's two axes at offset K along the third. Its outward normal points
// along the positive constant axis, or the negative one when Flipped.
type AARect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Flipped  bool
	Material material.Material
}

// NewXYRect creates a rectangle [x0, x1] x [y0, y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle [x0, x1] x [z0, z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle [y0, y1] x [z0, z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *AARect {
	return &AARect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// Flip returns a copy of the rectangle facing the other way
func (r *AARect) Flip() *AARect {
	flipped := *r
	flipped.Flipped = !r.Flipped
	return &flipped
}

// Hit intersects the ray with the rectangle's plane and checks the bounds.
// A ray parallel to the plane yields an infinite or NaN t and misses.
func (r *AARect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	a, b, k := r.Plane.axes()

	t := (r.K - ray.Origin[k]) / ray.Direction[k]
	if !(t > tMin && t < tMax) {
		return false
	}

	pa := ray.Origin[a] + t*ray.Direction[a]
	pb := ray.Origin[b] + t*ray.Direction[b]
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return false
	}

	rec.T = t
	rec.Point = ray.At(t)
	rec.Material = r.Material
	rec.U = (pa - r.A0) / (r.A1 - r.A0)
	rec.V = (pb - r.B0) / (r.B1 - r.B0)

	var outwardNormal core.Vec3
	outwardNormal[k] = 1
	if r.Flipped {
		outwardNormal[k] = -1
	}
	rec.SetFaceNormal(ray, outwardNormal)

	return true
}

// BoundingBox returns the rectangle's bounds padded to a thin slab on the constant axis
func (r *AARect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	a, b, k := r.Plane.axes()

	var lo, hi core.Vec3
	lo[a], hi[a] = r.A0, r.A1
	lo[b], hi[b] = r.B0, r.B1
	lo[k], hi[k] = r.K, r.K

	return core.NewAABB(lo, hi).Pad(rectThickness), true
}

func (*AARect) isPrimitive() {}
