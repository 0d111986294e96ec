package integrator

import (
	"math"
	"sync/atomic"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// rayEpsilon keeps secondary rays from re-hitting the surface they left
const rayEpsilon = 0.001

var black = core.Vec3{}

// PathTracer implements recursive unidirectional path tracing with one
// scattered ray per bounce and a hard depth limit
type PathTracer struct {
	MaxDepth   int
	Background Background
	logger     core.Logger

	violations      atomic.Int64
	nonFinite       atomic.Int64
	reportedFailure atomic.Bool
}

// NewPathTracer creates a path tracer. A nil background is black and a nil
// logger discards everything.
func NewPathTracer(maxDepth int, background Background, logger core.Logger) *PathTracer {
	if background == nil {
		background = NewConstantBackground(black)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &PathTracer{
		MaxDepth:   maxDepth,
		Background: background,
		logger:     logger,
	}
}

// Sample traces ray to the configured depth and zeroes non-finite results
func (pt *PathTracer) Sample(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	radiance := pt.Radiance(ray, world, pt.MaxDepth, sampler)
	if !core.IsFinite(radiance) {
		pt.nonFinite.Add(1)
		return black
	}
	return radiance
}

// Radiance computes the light arriving along ray with at most depth bounces left
func (pt *PathTracer) Radiance(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return black
	}

	var hit material.HitRecord
	if !world.Hit(ray, rayEpsilon, math.Inf(1), sampler, &hit) {
		return pt.Background.Color(ray)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, err := hit.Material.Scatter(ray, &hit, sampler)
	if err != nil {
		pt.reportViolation(err, &hit)
		return black
	}

	switch scatter.Kind {
	case material.Bounced:
		incoming := pt.Radiance(scatter.Scattered, world, depth-1, sampler)
		return emitted.Add(core.MulVec(scatter.Attenuation, incoming))
	case material.Attenuated:
		return emitted.Add(scatter.Attenuation)
	default:
		return emitted
	}
}

// reportViolation counts a material contract violation and logs the first one
func (pt *PathTracer) reportViolation(err error, hit *material.HitRecord) {
	pt.violations.Add(1)
	if pt.reportedFailure.CompareAndSwap(false, true) {
		pt.logger.Errorf("material contract violated at %v (t=%g, material %T): %v; further violations are only counted",
			hit.Point, hit.T, hit.Material, err)
	}
}

// Stats reports how many samples were discarded so far
func (pt *PathTracer) Stats() Stats {
	return Stats{
		Violations: pt.violations.Load(),
		NonFinite:  pt.nonFinite.Load(),
	}
}
