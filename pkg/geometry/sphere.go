package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius keeps the geometry but
// turns the surface normals inward, which makes hollow glass bubbles.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax, rec)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

func (*Sphere) isPrimitive() {}

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1; rays see it where it is at their emission time
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the sphere center at the given time
func (m *MovingSphere) Center(time float64) core.Vec3 {
	if m.Time1 == m.Time0 {
		return m.Center0
	}
	return core.Lerp(m.Center0, m.Center1, (time-m.Time0)/(m.Time1-m.Time0))
}

// Hit tests the ray against the sphere at the ray's time
func (m *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	return hitSphere(m.Center(ray.Time), m.Radius, m.Material, ray, tMin, tMax, rec)
}

// BoundingBox spans the sphere at both ends of the shutter interval
func (m *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box0 := sphereBox(m.Center(time0), m.Radius)
	box1 := sphereBox(m.Center(time1), m.Radius)
	return box0.Union(box1), true
}

func (*MovingSphere) isPrimitive() {}

func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64, rec *material.HitRecord) bool {
	// Quadratic equation coefficients: at² + 2ht + c = 0
	oc := ray.Origin.Sub(center)
	a := ray.Direction.LenSqr()
	halfB := oc.Dot(ray.Direction)
	c := oc.LenSqr() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if !(root > tMin && root < tMax) {
		root = (-halfB + sqrtD) / a
		if !(root > tMin && root < tMax) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	rec.Material = mat

	// Dividing by the signed radius flips the normal of negative spheres
	outwardNormal := rec.Point.Sub(center).Mul(1.0 / radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)

	return true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y())))
	phi := math.Atan2(-p.Z(), p.X()) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Sub(extent), center.Add(extent))
}
