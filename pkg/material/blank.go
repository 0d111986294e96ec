package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Blank is a placeholder material for geometry whose real material has not
// been assigned. A well-formed scene never exposes it to a ray.
type Blank struct {
	nonEmitting
}

// Scatter always reports ErrBlankMaterial
func (Blank) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, error) {
	return ScatterResult{Kind: Absorbed}, ErrBlankMaterial
}

func (Blank) isMaterial() {}
