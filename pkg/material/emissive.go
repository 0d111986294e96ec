package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

// DiffuseLight is an emitter; it is the only source of energy in a scene
type DiffuseLight struct {
	Emit texture.Texture
}

// NewDiffuseLight creates a light emitting a uniform color (values above 1 are allowed)
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission varies over the surface
func NewTexturedDiffuseLight(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never produces a ray: lights absorb what reaches them
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, error) {
	return ScatterResult{Kind: Absorbed}, nil
}

func (e *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return e.Emit.Value(u, v, p)
}

func (*DiffuseLight) isMaterial() {}
