package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	// 45-degree incidence onto an upward-facing surface
	ray := core.NewRayAt(core.NewVec3(0, 1, 0), core.Unit(core.NewVec3(1, -1, 0)), 0.7)
	hit := frontHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), glass)

	hasReflection, hasRefraction := false, false
	for seed := int64(0); seed < 1000 && (!hasReflection || !hasRefraction); seed++ {
		result, err := glass.Scatter(ray, hit, core.NewSeededSampler(seed))
		require.NoError(t, err)
		require.Equal(t, Bounced, result.Kind)
		require.Equal(t, core.NewVec3(1, 1, 1), result.Attenuation)
		require.Equal(t, 0.7, result.Scattered.Time)

		if result.Scattered.Direction.Y() > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	assert.True(t, hasRefraction, "expected refraction in at least some cases")
	assert.True(t, hasReflection, "expected Schlick reflection in at least some cases")
}

func TestDielectric_ForcedBranches(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.Unit(core.NewVec3(1, -1, 0)))
	hit := frontHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), glass)

	// A draw of 0 is always below the reflectance: reflect
	result, err := glass.Scatter(ray, hit, fixedSampler{one: 0})
	require.NoError(t, err)
	assert.Greater(t, result.Scattered.Direction.Y(), 0.0)

	// A draw just below 1 is above it: refract, bending towards the normal
	result, err = glass.Scatter(ray, hit, fixedSampler{one: 0.999999})
	require.NoError(t, err)
	dir := core.Unit(result.Scattered.Direction)
	assert.Less(t, dir.Y(), -math.Sqrt2/2)
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray leaving the glass
	rayDirection := core.Unit(core.NewVec3(1, -0.1, 0))
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := &HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), T: 1, FrontFace: false, Material: glass}

	cosTheta := -rayDirection.Dot(hit.Normal)
	require.Greater(t, 1.5*math.Sqrt(1-cosTheta*cosTheta), 1.0, "setup must cause total internal reflection")

	for i := 0; i < 10; i++ {
		// A draw of 0.999999 would refract if refraction were possible
		result, err := glass.Scatter(ray, hit, fixedSampler{one: 0.999999})
		require.NoError(t, err)
		assert.Greater(t, result.Scattered.Direction.Y(), 0.0)
		assert.InDelta(t, rayDirection.X(), result.Scattered.Direction.X(), 1e-10)
	}
}

func TestRefract_EqualIndicesPassStraightThrough(t *testing.T) {
	uv := core.NewVec3(1, 1, 0)
	n := core.NewVec3(-1, 0, 0)

	assert.Equal(t, core.NewVec3(0, 1, 0), Refract(uv, n, 1.0))
}

func TestReflectance(t *testing.T) {
	for _, refIdx := range []float64{1.0 / 1.5, 1.33, 1.5, 2.4} {
		r0 := (1 - refIdx) / (1 + refIdx)
		r0 = r0 * r0
		assert.Equal(t, r0, Reflectance(1.0, refIdx), "normal incidence for index %g", refIdx)
	}

	grazing := Reflectance(0.0, 1.5)
	assert.InDelta(t, 1.0, grazing, 1e-15)
	for i := 0; i < 100; i++ {
		require.Equal(t, grazing, Reflectance(0.0, 1.5))
	}

	// Monotonically decreasing from grazing to normal incidence
	prev := Reflectance(0, 1.5)
	for cos := 0.1; cos <= 1.0; cos += 0.1 {
		r := Reflectance(cos, 1.5)
		assert.LessOrEqual(t, r, prev)
		prev = r
	}
}
