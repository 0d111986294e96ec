package scene

import (
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

// randomGridExtent is the half-width of the grid of small spheres
const randomGridExtent = 11

// NewRandomScene scatters small diffuse, metal and glass spheres around three
// large ones on a checkered ground. Diffuse spheres bounce during the exposure.
func NewRandomScene(opts Options) *Scene {
	camera := lookFrom(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20)
	camera.Aperture = 0.1
	camera.FocusDistance = 10

	s := &Scene{
		Name:         "random",
		Params:       renderer.NewImageParams(3.0/2.0, 400, 100, 50, integrator.NewSkyGradient()),
		CameraConfig: camera,
	}

	random := rand.New(rand.NewSource(opts.Seed))
	sampler := core.NewRandomSampler(random)

	checker := material.NewTexturedLambertian(
		texture.NewCheckerRGB(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, checker))

	for a := -randomGridExtent; a < randomGridExtent; a++ {
		for b := -randomGridExtent; b < randomGridExtent; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep the space in front of the large metal sphere clear
			if center.Sub(core.NewVec3(4, 0.2, 0)).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.MulVec(sampler.Get3D(), sampler.Get3D())
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(
					core.RandomRange(sampler, 0.5, 1),
					core.RandomRange(sampler, 0.5, 1),
					core.RandomRange(sampler, 0.5, 1),
				)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
