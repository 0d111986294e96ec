package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices; the winding
// (V1-V0) x (V2-V0) gives the outward normal
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   core.Unit(v1.Sub(v0).Cross(v2.Sub(v0))),
	}
}

// Normal returns the triangle's outward normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The barycentric weights of V1 and V2 become the hit's (u, v).
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	const epsilon = 1e-8

	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return false
	}

	tHit := f * edge2.Dot(q)
	if !(tHit > tMin && tHit < tMax) {
		return false
	}

	rec.T = tHit
	rec.Point = ray.At(tHit)
	rec.Material = t.Material
	rec.U, rec.V = u, v
	rec.SetFaceNormal(ray, t.normal)

	return true
}

// BoundingBox returns the box around the vertices, padded so axis-aligned triangles stay hittable
func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2).Pad(rectThickness), true
}

func (*Triangle) isPrimitive() {}
