package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// constSampler returns the same value for every draw
type constSampler float64

func (c constSampler) Get1D() float64   { return float64(c) }
func (c constSampler) Get2D() core.Vec2 { return core.NewVec2(float64(c), float64(c)) }
func (c constSampler) Get3D() core.Vec3 { return core.NewVec3(float64(c), float64(c), float64(c)) }

// unboundedPrimitive never reports a bounding box
type unboundedPrimitive struct{}

func (unboundedPrimitive) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	return false
}

func (unboundedPrimitive) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func (unboundedPrimitive) isPrimitive() {}

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
