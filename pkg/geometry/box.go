package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Box represents an axis-aligned box made up of six rectangles sharing one material.
// Rotated boxes are built by wrapping a Box in RotateY.
type Box struct {
	Min      core.Vec3         // Minimum corner
	Max      core.Vec3         // Maximum corner
	Material material.Material // Material for all faces
	faces    [6]*AARect        // The six faces
}

// NewBox creates a new box spanning two opposite corners
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	min := core.MinVec(p0, p1)
	max := core.MaxVec(p0, p1)

	box := &Box{
		Min:      min,
		Max:      max,
		Material: material,
	}

	// Faces on the minimum corner are flipped so every normal points out of the box
	box.faces = [6]*AARect{
		NewXYRect(min.X(), max.X(), min.Y(), max.Y(), max.Z(), material),        // front
		NewXYRect(min.X(), max.X(), min.Y(), max.Y(), min.Z(), material).Flip(), // back
		NewXZRect(min.X(), max.X(), min.Z(), max.Z(), max.Y(), material),        // top
		NewXZRect(min.X(), max.X(), min.Z(), max.Z(), min.Y(), material).Flip(), // bottom
		NewYZRect(min.Y(), max.Y(), min.Z(), max.Z(), max.X(), material),        // right
		NewYZRect(min.Y(), max.Y(), min.Z(), max.Z(), min.X(), material).Flip(), // left
	}

	return box
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	hitAnything := false
	closest := tMax

	for _, face := range b.faces {
		if face.Hit(ray, tMin, closest, sampler, rec) {
			hitAnything = true
			closest = rec.T
		}
	}

	return hitAnything
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max).Pad(rectThickness), true
}

func (*Box) isPrimitive() {}
