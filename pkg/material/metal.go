package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmitting
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material; fuzz is clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors rayIn about the normal and perturbs it by the fuzz radius.
// Perturbed rays that end up under the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, error) {
	reflected := Reflect(core.Unit(rayIn.Direction), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Mul(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{Kind: Absorbed}, nil
	}

	return ScatterResult{
		Kind:        Bounced,
		Attenuation: m.Albedo,
		Scattered:   core.NewRayAt(hit.Point, reflected, rayIn.Time),
	}, nil
}

func (*Metal) isMaterial() {}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
