package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmitting
	Albedo texture.Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces towards normal + a uniform unit vector, which is
// cosine-distributed around the normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, error) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// The unit vector can cancel the normal almost exactly
	if core.NearZero(direction) {
		direction = hit.Normal
	}

	return ScatterResult{
		Kind:        Bounced,
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, nil
}

func (*Lambertian) isMaterial() {}
