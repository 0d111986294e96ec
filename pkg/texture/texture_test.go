package texture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/loaders"
)

func TestSolidColor(t *testing.T) {
	solid := NewSolidRGB(0.2, 0.4, 0.6)
	assert.Equal(t, core.NewVec3(0.2, 0.4, 0.6), solid.Value(0.3, 0.9, core.NewVec3(5, 6, 7)))
	assert.Equal(t, core.NewVec3(0.2, 0.4, 0.6), solid.Upper())
}

func TestChecker(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerRGB(even, odd)

	// sin(1)^3 > 0
	assert.Equal(t, even, checker.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1)))
	// sin(-1)·sin(1)·sin(1) < 0
	assert.Equal(t, odd, checker.Value(0, 0, core.NewVec3(-0.1, 0.1, 0.1)))

	assert.Equal(t, even, checker.Upper())

	unbounded := NewChecker(NewSolidColor(even), unboundedTexture{})
	assert.True(t, math.IsInf(unbounded.Upper().X(), 1))
}

type unboundedTexture struct{}

func (unboundedTexture) Value(u, v float64, p core.Vec3) core.Vec3 { return core.Vec3{} }

func TestPerlin_IsDeterministicAndBounded(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(3)))
	b := NewPerlin(rand.New(rand.NewSource(3)))

	random := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		p := core.NewVec3(random.Float64()*40-20, random.Float64()*40-20, random.Float64()*40-20)
		require.Equal(t, a.Noise(p), b.Noise(p))
		require.LessOrEqual(t, math.Abs(a.Noise(p)), 2.0)
		require.GreaterOrEqual(t, a.Turbulence(p, 7), 0.0)
	}

	// Lattice points have zero gradient weight
	assert.InDelta(t, 0.0, a.Noise(core.NewVec3(3, -4, 5)), 1e-12)
}

func TestNoise_StaysInUnitRange(t *testing.T) {
	noise := NewNoise(4, 42)
	random := rand.New(rand.NewSource(9))
	for i := 0; i < 500; i++ {
		p := core.NewVec3(random.Float64()*10, random.Float64()*10, random.Float64()*10)
		c := noise.Value(0, 0, p)
		require.GreaterOrEqual(t, c.X(), 0.0)
		require.LessOrEqual(t, c.X(), 1.0)
		require.Equal(t, c.X(), c.Y())
		require.Equal(t, c.Y(), c.Z())
	}
}

func TestImage_Value(t *testing.T) {
	data := &loaders.ImageData{
		Width:  2,
		Height: 2,
		Pixels: []core.Vec3{
			core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), // top row
			core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1), // bottom row
		},
	}
	img := NewImage(data)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"top left", 0.1, 0.9, core.NewVec3(1, 0, 0)},
		{"top right", 0.9, 0.9, core.NewVec3(0, 1, 0)},
		{"bottom left", 0.1, 0.1, core.NewVec3(0, 0, 1)},
		{"bottom right", 0.9, 0.1, core.NewVec3(1, 1, 1)},
		{"u=1 clamps to last column", 1.0, 0.1, core.NewVec3(1, 1, 1)},
		{"v=0 clamps to last row", 0.1, 0.0, core.NewVec3(0, 0, 1)},
		{"outside range clamps", -5, 7, core.NewVec3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, img.Value(tt.u, tt.v, core.Vec3{}))
		})
	}

	assert.Equal(t, core.NewVec3(0, 1, 1), NewImage(nil).Value(0.5, 0.5, core.Vec3{}))
}
