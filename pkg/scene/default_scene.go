package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewDefaultScene creates three spheres on a large ground sphere, a hollow
// glass bubble and one sphere moving during the exposure
func NewDefaultScene(opts Options) *Scene {
	s := &Scene{
		Name:         "default",
		Params:       renderer.NewImageParams(3.0/2.0, 400, 100, 50, integrator.NewSkyGradient()),
		CameraConfig: lookFrom(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
	}

	// Create materials
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.2, 0.3, 0.6))
	left := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, glass),
		// Negative radius flips the normals inward: a bubble inside the glass sphere
		geometry.NewSphere(core.NewVec3(1, 0, -1), -0.4, glass),
		geometry.NewMovingSphere(core.NewVec3(1, 1, -1), core.NewVec3(1, 1, 0), 0, 2, 0.5, center),
	)

	return s
}
