package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/texture"
)

// NewPerlinScene creates two marble spheres lit by a small rectangle and a
// glowing sphere, with a dim sky
func NewPerlinScene(opts Options) *Scene {
	s := &Scene{
		Name:         "perlin",
		Params:       renderer.NewImageParams(16.0/9.0, 400, 100, 50, integrator.NewConstantBackground(core.NewVec3(0.02, 0.02, 0.03))),
		CameraConfig: lookFrom(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20),
	}

	marble := material.NewTexturedLambertian(texture.NewNoise(4, opts.Seed))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	return s
}
