package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// mediumExitOffset separates the entry and exit queries against the boundary
const mediumExitOffset = 0.0001

// ConstantMedium is a volume of uniform density filling a convex boundary,
// such as smoke or fog. A ray passing through it scatters at an exponentially
// distributed distance, or passes through untouched.
type ConstantMedium struct {
	Boundary      Primitive
	Density       float64
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density and color
func NewConstantMedium(boundary Primitive, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMediumWithPhase(boundary, density, material.NewIsotropic(albedo))
}

// NewConstantMediumWithPhase fills boundary with a medium scattering through phase
func NewConstantMediumWithPhase(boundary Primitive, density float64, phase material.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: phase,
		negInvDensity: -1 / density,
	}
}

// Hit finds where the ray enters and leaves the boundary and samples a
// scattering distance inside. The normal and face of the record are arbitrary.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	var enter, exit material.HitRecord
	if !m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler, &enter) {
		return false
	}
	if !m.Boundary.Hit(ray, enter.T+mediumExitOffset, math.Inf(1), sampler, &exit) {
		return false
	}

	t0 := math.Max(enter.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return false
	}
	t0 = math.Max(t0, 0)

	rayLength := ray.Direction.Len()
	distanceInside := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if !(hitDistance <= distanceInside) {
		return false
	}

	t := t0 + hitDistance/rayLength
	if !(t > tMin && t < tMax) {
		return false
	}

	rec.T = t
	rec.Point = ray.At(t)
	rec.Normal = core.NewVec3(1, 0, 0)
	rec.FrontFace = true
	rec.Material = m.PhaseFunction
	rec.U, rec.V = 0, 0

	return true
}

func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

func (*ConstantMedium) isPrimitive() {}
