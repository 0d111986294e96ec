package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction
type Isotropic struct {
	nonEmitting
	Albedo texture.Texture
}

// NewIsotropic creates a phase function with a uniform color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a phase function with a textured color
func NewTexturedIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, error) {
	return ScatterResult{
		Kind:        Bounced,
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, core.RandomUnitVector(sampler), rayIn.Time),
	}, nil
}

func (*Isotropic) isMaterial() {}
