package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

var (
	// ErrEmptyPrimitiveList is returned when a BVH is built over nothing
	ErrEmptyPrimitiveList = errors.New("geometry: empty primitive list")
	// ErrNoBoundingBox is wrapped by build errors for primitives without a usable box
	ErrNoBoundingBox = errors.New("geometry: primitive has no bounding box")
)

// Hittable is anything a ray can be tested against.
// Hit writes rec only when it reports a hit, and only for t strictly inside (tMin, tMax).
// The sampler is consumed by probabilistic geometry such as ConstantMedium.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool
	// BoundingBox returns the box enclosing the shape over the shutter
	// interval [time0, time1], or false if none exists
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// Primitive is the closed set of scene geometry: Sphere, MovingSphere,
// AARect, Box, Triangle, the Translate and RotateY wrappers, ConstantMedium
// and the List and BVH aggregates.
type Primitive interface {
	Hittable
	isPrimitive()
}

// Describe returns a short human readable description of p for diagnostics
func Describe(p Primitive) string {
	switch prim := p.(type) {
	case nil:
		return "<nil>"
	case *Sphere:
		return fmt.Sprintf("sphere(center=%v, radius=%g)", prim.Center, prim.Radius)
	case *MovingSphere:
		return fmt.Sprintf("moving sphere(center0=%v, center1=%v, radius=%g)", prim.Center0, prim.Center1, prim.Radius)
	case *AARect:
		return fmt.Sprintf("%s rect([%g, %g]x[%g, %g], k=%g)", prim.Plane, prim.A0, prim.A1, prim.B0, prim.B1, prim.K)
	case *Box:
		return fmt.Sprintf("box(min=%v, max=%v)", prim.Min, prim.Max)
	case *Triangle:
		return fmt.Sprintf("triangle(%v, %v, %v)", prim.V0, prim.V1, prim.V2)
	case *Translate:
		return fmt.Sprintf("translate(%v, %s)", prim.Offset, Describe(prim.Inner))
	case *RotateY:
		return fmt.Sprintf("rotate-y(%g°, %s)", prim.Angle, Describe(prim.Inner))
	case *ConstantMedium:
		return fmt.Sprintf("constant medium(density=%g, %s)", prim.Density, Describe(prim.Boundary))
	case *List:
		return fmt.Sprintf("list(%d)", prim.Len())
	case *BVH:
		return fmt.Sprintf("bvh(%d primitives)", prim.Len())
	default:
		return fmt.Sprintf("%T", p)
	}
}

// Materials returns every material reachable from p, in traversal order
func Materials(p Primitive) []material.Material {
	var out []material.Material
	collectMaterials(p, &out)
	return out
}

func collectMaterials(p Primitive, out *[]material.Material) {
	switch prim := p.(type) {
	case *Sphere:
		*out = append(*out, prim.Material)
	case *MovingSphere:
		*out = append(*out, prim.Material)
	case *AARect:
		*out = append(*out, prim.Material)
	case *Box:
		*out = append(*out, prim.Material)
	case *Triangle:
		*out = append(*out, prim.Material)
	case *Translate:
		collectMaterials(prim.Inner, out)
	case *RotateY:
		collectMaterials(prim.Inner, out)
	case *ConstantMedium:
		// The boundary only shapes the volume; its own material is never scattered
		*out = append(*out, prim.PhaseFunction)
	case *List:
		for _, item := range prim.items {
			collectMaterials(item, out)
		}
	case *BVH:
		for _, item := range prim.prims {
			collectMaterials(item, out)
		}
	}
}
