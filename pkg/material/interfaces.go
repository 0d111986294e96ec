package material

import (
	"errors"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

var (
	// ErrBlankMaterial is returned when a surface carrying the Blank sentinel is scattered
	ErrBlankMaterial = errors.New("material: blank material hit")
	// ErrInvalidMaterial is wrapped by Validate failures
	ErrInvalidMaterial = errors.New("material: invalid material")
)

// Material is the closed set of surface behaviours: Lambertian, Metal,
// Dielectric, DiffuseLight, Isotropic and Blank.
type Material interface {
	// Scatter decides what happens to rayIn at hit. An error means the scene
	// violated a material contract; the caller treats it as absorption.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, error)

	// Emitted returns the radiance leaving the surface on its own
	Emitted(u, v float64, p core.Vec3) core.Vec3

	isMaterial()
}

// ScatterKind classifies a scatter outcome
type ScatterKind uint8

const (
	// Absorbed: no attenuation and no outgoing ray
	Absorbed ScatterKind = iota
	// Attenuated: the surface contributes its attenuation directly, no outgoing ray
	Attenuated
	// Bounced: the attenuation scales the radiance arriving along Scattered
	Bounced
)

func (k ScatterKind) String() string {
	switch k {
	case Absorbed:
		return "absorbed"
	case Attenuated:
		return "attenuated"
	case Bounced:
		return "bounced"
	default:
		return "unknown"
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Kind        ScatterKind
	Attenuation core.Vec3 // Color attenuation, meaningful unless Kind is Absorbed
	Scattered   core.Ray  // Outgoing ray, meaningful only when Kind is Bounced
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface parametrisation at the hit
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Mul(-1)
	}
}

var black = core.Vec3{}

// nonEmitting is embedded by every material that gives off no light
type nonEmitting struct{}

func (nonEmitting) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return black
}
