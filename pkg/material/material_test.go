package material

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

func TestDiffuseLight(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	hit := frontHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), light)

	result, err := light.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, core.NewSeededSampler(1))
	require.NoError(t, err)
	assert.Equal(t, Absorbed, result.Kind)
	assert.Equal(t, core.NewVec3(4, 4, 4), light.Emitted(0.5, 0.5, hit.Point))
}

func TestIsotropic_ScattersUniformly(t *testing.T) {
	fog := NewIsotropic(core.NewVec3(0.2, 0.2, 0.2))
	hit := frontHit(core.NewVec3(1, 2, 3), core.NewVec3(1, 0, 0), fog)

	sampler := core.NewSeededSampler(3)
	up, down := 0, 0
	for i := 0; i < 1000; i++ {
		result, err := fog.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), hit, sampler)
		require.NoError(t, err)
		require.Equal(t, Bounced, result.Kind)
		require.InDelta(t, 1.0, result.Scattered.Direction.Len(), 1e-9)
		require.Equal(t, hit.Point, result.Scattered.Origin)
		if result.Scattered.Direction.Y() > 0 {
			up++
		} else {
			down++
		}
	}
	// Roughly half the directions point up
	assert.InDelta(t, 500, up, 100)
	assert.InDelta(t, 500, down, 100)
}

func TestBlank_ReportsContractViolation(t *testing.T) {
	var blank Blank
	hit := frontHit(core.Vec3{}, core.NewVec3(0, 1, 0), blank)

	result, err := blank.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), hit, core.NewSeededSampler(1))
	assert.ErrorIs(t, err, ErrBlankMaterial)
	assert.Equal(t, Absorbed, result.Kind)
	assert.Equal(t, core.Vec3{}, blank.Emitted(0, 0, core.Vec3{}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mat     Material
		wantErr bool
	}{
		{"lambertian in range", NewLambertian(core.NewVec3(0.5, 1, 0)), false},
		{"lambertian amplifies", NewLambertian(core.NewVec3(1.2, 0.5, 0.5)), true},
		{"lambertian negative", NewLambertian(core.NewVec3(-0.1, 0.5, 0.5)), true},
		{"lambertian noise texture", NewTexturedLambertian(texture.NewNoise(4, 1)), false},
		{"lambertian nil texture", &Lambertian{}, true},
		{"metal in range", NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.2), false},
		{"metal amplifies", NewMetal(core.NewVec3(0.7, 1.6, 0.5), 0.2), true},
		{"metal fuzz out of range", &Metal{Albedo: core.NewVec3(0.5, 0.5, 0.5), Fuzz: 3}, true},
		{"glass", NewDielectric(1.5), false},
		{"negative index", NewDielectric(-1), true},
		{"nan index", NewDielectric(math.NaN()), true},
		{"bright light", NewDiffuseLight(core.NewVec3(15, 15, 15)), false},
		{"light without texture", &DiffuseLight{}, true},
		{"isotropic", NewIsotropic(core.NewVec3(1, 1, 1)), false},
		{"isotropic amplifies", NewIsotropic(core.NewVec3(2, 1, 1)), true},
		{"blank", Blank{}, true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mat)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMaterial))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.ErrorIs(t, Validate(Blank{}), ErrBlankMaterial)
}

func TestScatterKind_String(t *testing.T) {
	assert.Equal(t, "absorbed", Absorbed.String())
	assert.Equal(t, "attenuated", Attenuated.String())
	assert.Equal(t, "bounced", Bounced.String())
	assert.Equal(t, "unknown", ScatterKind(42).String())
}

func TestSetFaceNormal(t *testing.T) {
	var hit HitRecord
	outward := core.NewVec3(0, 0, 1)

	hit.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), outward)
	assert.True(t, hit.FrontFace)
	assert.Equal(t, outward, hit.Normal)

	hit.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), outward)
	assert.False(t, hit.FrontFace)
	assert.Equal(t, core.NewVec3(0, 0, -1), hit.Normal)
}
