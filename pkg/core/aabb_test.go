package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBox(random *rand.Rand) AABB {
	a := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	b := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	return NewAABB(a, b)
}

func TestNewAABB_NormalisesCorners(t *testing.T) {
	box := NewAABB(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))
	assert.Equal(t, NewVec3(-1, -2, -3), box.Min)
	assert.Equal(t, NewVec3(1, 2, 3), box.Max)
	assert.True(t, box.IsValid())
}

func TestAABB_UnionContainsBothInputs(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a, b := randomBox(random), randomBox(random)
		u := a.Union(b)
		require.True(t, u.Contains(a), "union %v must contain %v", u, a)
		require.True(t, u.Contains(b), "union %v must contain %v", u, b)
		require.True(t, u.IsValid())
	}
}

func TestAABB_UnionIsAssociativeAndCommutative(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		a, b, c := randomBox(random), randomBox(random), randomBox(random)
		assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))
		assert.Equal(t, a.Union(b), b.Union(a))
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMin     float64
		tMax     float64
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), 0, 100, true},
		{"negative direction", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), 0, 100, true},
		{"diagonal", NewRay(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)), 0, 100, true},
		{"miss to the side", NewRay(NewVec3(2, 0.5, -5), NewVec3(0, 0, 1)), 0, 100, false},
		{"box behind origin", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, 1)), 0, 100, false},
		{"interval ends before box", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), 0, 4, false},
		{"origin inside", NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(1, 0, 0)), 0, 100, true},
		{"parallel outside slab", NewRay(NewVec3(0.5, 3, -5), NewVec3(0, 0, 1)), 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, box.Hit(tt.ray, tt.tMin, tt.tMax))
		})
	}
}

func TestAABB_ZeroDirectionComponentInsideSlab(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	// Direction has exact zeros on X and Y: the reciprocal is infinite there.
	ray := NewRay(NewVec3(0.25, -0.5, -10), NewVec3(0, 0, 1))
	assert.True(t, box.Hit(ray, 0, 100))

	// Negative zero behaves the same as positive zero.
	ray = NewRay(NewVec3(0.25, -0.5, -10), NewVec3(-0.0, -0.0, 1))
	assert.True(t, box.Hit(ray, 0, 100))

	// Origin exactly on the slab boundary counts as inside the slab.
	ray = NewRay(NewVec3(1, 1, -10), NewVec3(0, 0, 1))
	assert.True(t, box.Hit(ray, 0, 100))
}

func TestAABB_TangentRayIsDeterministic(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	// Grazes the top face (y = 1) along X.
	tangent := NewRay(NewVec3(-2, 1, 0.5), NewVec3(1, 0, 0))
	// Touches the box only at the edge x = 1, y = 1.
	edge := NewRay(NewVec3(0, 2, 0.5), NewVec3(1, -1, 0))

	for _, ray := range []Ray{tangent, edge} {
		first := box.Hit(ray, 0, 100)
		for i := 0; i < 1000; i++ {
			require.Equal(t, first, box.Hit(ray, 0, 100))
		}
	}
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABB(NewVec3(0, 0, 2), NewVec3(1, 1, 2))
	padded := flat.Pad(0.0001)

	assert.InDelta(t, 2-0.00005, padded.Min.Z(), 1e-12)
	assert.InDelta(t, 2+0.00005, padded.Max.Z(), 1e-12)
	assert.Equal(t, flat.Min.X(), padded.Min.X())
	assert.Equal(t, flat.Max.Y(), padded.Max.Y())

	ray := NewRay(NewVec3(0.5, 0.5, 0), NewVec3(0, 0, 1))
	assert.True(t, padded.Hit(ray, 0, 10))
}

func TestAABB_IsValid(t *testing.T) {
	assert.False(t, AABB{Min: NewVec3(1, 0, 0), Max: NewVec3(0, 1, 1)}.IsValid())
	assert.True(t, NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(2, -1, 3), NewVec3(1, 1, 1)).IsValid())
	assert.Equal(t, 2, NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3)).LongestAxis())
}
