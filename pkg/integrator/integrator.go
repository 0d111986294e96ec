package integrator

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Sample returns the radiance carried back along a primary ray.
	// The result is always finite.
	Sample(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
	// Stats reports anomalies seen so far
	Stats() Stats
}

// Stats counts samples the integrator had to discard
type Stats struct {
	Violations int64 // Material contract violations, each contributing black
	NonFinite  int64 // Samples that came out NaN or infinite and were zeroed
}

// Background gives the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// ConstantBackground returns the same color in every direction
type ConstantBackground struct {
	Value core.Vec3
}

// NewConstantBackground creates a uniform background
func NewConstantBackground(color core.Vec3) ConstantBackground {
	return ConstantBackground{Value: color}
}

func (b ConstantBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// SkyGradient blends from Horizon for rays pointing down to Zenith for rays pointing up
type SkyGradient struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// NewSkyGradient creates the white to light blue daylight sky
func NewSkyGradient() SkyGradient {
	return SkyGradient{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color interpolates on the y component of the unit direction, mapped from [-1, 1] to [0, 1]
func (s SkyGradient) Color(ray core.Ray) core.Vec3 {
	t := 0.5 * (core.Unit(ray.Direction).Y() + 1.0)
	return core.Lerp(s.Horizon, s.Zenith, t)
}
