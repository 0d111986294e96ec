package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// NewCornellScene creates a classic Cornell box lit only by its ceiling light,
// holding a tall and a short rotated box
func NewCornellScene(opts Options) *Scene {
	s := newCornellRoom("cornell", core.NewVec3(15, 15, 15), 213, 343, 227, 332)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBoxes(white)
	s.Add(tall, short)

	return s
}

// NewCornellSmokeScene replaces the Cornell boxes with blocks of dark and
// light smoke under a larger, dimmer light
func NewCornellSmokeScene(opts Options) *Scene {
	s := newCornellRoom("cornell-smoke", core.NewVec3(7, 7, 7), 113, 443, 127, 432)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s
}

// newCornellRoom creates the five walls and a ceiling light spanning
// [x0, x1] x [z0, z1] just below the ceiling
func newCornellRoom(name string, emission core.Vec3, x0, x1, z0, z1 float64) *Scene {
	camera := lookFrom(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40)

	s := &Scene{
		Name:         name,
		Params:       renderer.NewImageParams(1.0, 400, 200, 50, integrator.NewConstantBackground(core.NewVec3(0, 0, 0))),
		CameraConfig: camera,
	}

	// Create materials
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(emission)

	s.Add(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green).Flip(), // Left wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),                // Right wall
		geometry.NewXZRect(x0, x1, z0, z1, boxSize-1, light).Flip(),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),              // Floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white).Flip(), // Ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white).Flip(), // Back wall
	)

	return s
}

// cornellBoxes returns the tall box turned 15° and the short box turned -18°
func cornellBoxes(mat material.Material) (tall, short geometry.Primitive) {
	tall = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat), 15),
		core.NewVec3(265, 0, 295),
	)
	short = geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat), -18),
		core.NewVec3(130, 0, 65),
	)
	return tall, short
}
