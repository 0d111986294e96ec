package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Translate moves its inner primitive by Offset
type Translate struct {
	Inner  Primitive
	Offset core.Vec3
}

// NewTranslate wraps inner so that it appears moved by offset
func NewTranslate(inner Primitive, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit moves the ray into the inner primitive's space instead of moving the primitive
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	moved := core.NewRayAt(ray.Origin.Sub(tr.Offset), ray.Direction, ray.Time)
	if !tr.Inner.Hit(moved, tMin, tMax, sampler, rec) {
		return false
	}

	// Normals and t are unchanged by a translation
	rec.Point = rec.Point.Add(tr.Offset)
	return true
}

func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

func (*Translate) isPrimitive() {}

// RotateY rotates its inner primitive by Angle degrees about the Y axis.
// Both rotation matrices and the rotated bounding box are computed once at construction.
type RotateY struct {
	Inner    Primitive
	Angle    float64    // Degrees, counter-clockwise looking down -Y
	toWorld  mgl64.Mat3 // Object space to world space
	toObject mgl64.Mat3 // World space to object space
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY wraps inner in a rotation of angle degrees about the Y axis.
// The inner box is taken over the shutter interval [0, 1].
func NewRotateY(inner Primitive, angle float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(angle))
	r := &RotateY{
		Inner:    inner,
		Angle:    angle,
		toWorld:  toWorld,
		toObject: toWorld.Transpose(),
	}
	r.bbox, r.hasBox = r.rotatedBox(0, 1)
	return r
}

// SinTheta returns the sine of the rotation angle
func (r *RotateY) SinTheta() float64 {
	return r.toWorld.At(0, 2)
}

// CosTheta returns the cosine of the rotation angle
func (r *RotateY) CosTheta() float64 {
	return r.toWorld.At(0, 0)
}

// Hit rotates the ray into object space, intersects, then rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	rotated := core.NewRayAt(r.toObject.Mul3x1(ray.Origin), r.toObject.Mul3x1(ray.Direction), ray.Time)
	if !r.Inner.Hit(rotated, tMin, tMax, sampler, rec) {
		return false
	}

	// A rotation preserves which side of the surface the ray came from
	rec.Point = r.toWorld.Mul3x1(rec.Point)
	rec.Normal = r.toWorld.Mul3x1(rec.Normal)
	return true
}

// BoundingBox returns the precomputed box for the default shutter interval,
// and recomputes it for any other interval
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if time0 == 0 && time1 == 1 {
		return r.bbox, r.hasBox
	}
	return r.rotatedBox(time0, time1)
}

// rotatedBox bounds the eight rotated corners of the inner box
func (r *RotateY) rotatedBox(time0, time1 float64) (core.AABB, bool) {
	inner, ok := r.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pick(i, inner.Min.X(), inner.Max.X()),
					pick(j, inner.Min.Y(), inner.Max.Y()),
					pick(k, inner.Min.Z(), inner.Max.Z()),
				)
				corners = append(corners, r.toWorld.Mul3x1(corner))
			}
		}
	}
	return core.NewAABBFromPoints(corners...), true
}

func pick(i int, lo, hi float64) float64 {
	if i == 0 {
		return lo
	}
	return hi
}

func (*RotateY) isPrimitive() {}
