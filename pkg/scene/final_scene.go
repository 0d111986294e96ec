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

const (
	finalGroundBoxes    = 20   // Boxes per side of the ground grid
	finalClusterSpheres = 1000 // Spheres in the rotated cluster
)

// NewFinalScene combines every primitive and material: a field of boxes of
// random height, a moving sphere, glass with subsurface fog, global mist, a
// textured sphere, a marble sphere, a rotated cluster of spheres and a glass
// pyramid. The textured sphere uses opts.ImagePath when set and a checker
// pattern otherwise.
func NewFinalScene(opts Options) (*Scene, error) {
	s := &Scene{
		Name:         "final",
		Params:       renderer.NewImageParams(1.0, 400, 500, 50, integrator.NewConstantBackground(core.NewVec3(0, 0, 0))),
		CameraConfig: lookFrom(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40),
	}

	random := rand.New(rand.NewSource(opts.Seed))
	sampler := core.NewRandomSampler(random)

	// Ground: one BVH of boxes so the grid is a single primitive of the scene
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]geometry.Primitive, 0, finalGroundBoxes*finalGroundBoxes)
	for i := 0; i < finalGroundBoxes; i++ {
		for j := 0; j < finalGroundBoxes; j++ {
			const width = 100.0
			x0 := -1000 + float64(i)*width
			z0 := -1000 + float64(j)*width
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+width, y1, z0+width), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(boxes, 0, 1)
	if err != nil {
		return nil, &BuildError{Scene: s.Name, Stage: "ground", Err: err}
	}
	s.Add(groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light).Flip())

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	glass := material.NewDielectric(1.5)
	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, glass)
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, glass)
	s.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	var surface texture.Texture = texture.NewCheckerRGB(core.NewVec3(0.1, 0.2, 0.6), core.NewVec3(0.9, 0.9, 0.9))
	if opts.ImagePath != "" {
		image, err := texture.LoadImage(opts.ImagePath)
		if err != nil {
			return nil, &BuildError{Scene: s.Name, Stage: "texture", Err: err}
		}
		surface = image
	}
	s.Add(
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(surface)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(texture.NewNoise(0.1, opts.Seed))),
	)

	// Cluster of small white spheres in a unit of its own, turned and moved into place
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	spheres := make([]geometry.Primitive, 0, finalClusterSpheres)
	for i := 0; i < finalClusterSpheres; i++ {
		center := core.NewVec3(
			core.RandomRange(sampler, 0, 165),
			core.RandomRange(sampler, 0, 165),
			core.RandomRange(sampler, 0, 165),
		)
		spheres = append(spheres, geometry.NewSphere(center, 10, white))
	}
	cluster, err := geometry.NewBVH(spheres, 0, 1)
	if err != nil {
		return nil, &BuildError{Scene: s.Name, Stage: "sphere cluster", Err: err}
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(cluster, 15), core.NewVec3(-100, 270, 395)))

	s.Add(pyramid(core.NewVec3(120, 0, 300), 80, 120, glass)...)

	return s, nil
}

// pyramid returns the four sides and the base of a square pyramid standing on base
func pyramid(base core.Vec3, halfWidth, height float64, mat material.Material) []geometry.Primitive {
	apex := base.Add(core.NewVec3(0, height, 0))
	corners := [4]core.Vec3{
		base.Add(core.NewVec3(-halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, -halfWidth)),
		base.Add(core.NewVec3(halfWidth, 0, halfWidth)),
		base.Add(core.NewVec3(-halfWidth, 0, halfWidth)),
	}

	faces := make([]geometry.Primitive, 0, 6)
	for i := range corners {
		faces = append(faces, geometry.NewTriangle(corners[i], apex, corners[(i+1)%4], mat))
	}
	faces = append(faces,
		geometry.NewTriangle(corners[0], corners[1], corners[2], mat),
		geometry.NewTriangle(corners[0], corners[2], corners[3], mat),
	)
	return faces
}
