package material

import (
	"fmt"
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

// Validate checks the invariants a material must satisfy before rendering:
// non-emitting materials never amplify light, dielectrics have a positive
// index and the Blank sentinel is not used at all.
func Validate(m Material) error {
	switch mat := m.(type) {
	case nil:
		return fmt.Errorf("%w: nil material", ErrInvalidMaterial)
	case *Lambertian:
		return validateTexture("lambertian albedo", mat.Albedo)
	case *Metal:
		if mat.Fuzz < 0 || mat.Fuzz > 1 {
			return fmt.Errorf("%w: metal fuzz %g outside [0, 1]", ErrInvalidMaterial, mat.Fuzz)
		}
		return validateAttenuation("metal albedo", mat.Albedo)
	case *Dielectric:
		if !(mat.RefractiveIndex > 0) || math.IsInf(mat.RefractiveIndex, 0) {
			return fmt.Errorf("%w: dielectric refractive index %g", ErrInvalidMaterial, mat.RefractiveIndex)
		}
		return nil
	case *DiffuseLight:
		if mat.Emit == nil {
			return fmt.Errorf("%w: diffuse light without emission texture", ErrInvalidMaterial)
		}
		return nil
	case *Isotropic:
		return validateTexture("isotropic albedo", mat.Albedo)
	case Blank, *Blank:
		return fmt.Errorf("%w: %w", ErrInvalidMaterial, ErrBlankMaterial)
	default:
		return fmt.Errorf("%w: unknown material %T", ErrInvalidMaterial, m)
	}
}

func validateTexture(what string, tex texture.Texture) error {
	if tex == nil {
		return fmt.Errorf("%w: %s is nil", ErrInvalidMaterial, what)
	}
	bounded, ok := tex.(texture.Bounded)
	if !ok {
		// Arbitrary textures cannot be checked up front
		return nil
	}
	return validateAttenuation(what, bounded.Upper())
}

func validateAttenuation(what string, c core.Vec3) error {
	for i, v := range c {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s channel %d is %g, must be within [0, 1]", ErrInvalidMaterial, what, i, v)
		}
	}
	return nil
}
