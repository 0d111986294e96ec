package scene

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Params       renderer.ImageParams  // Default image size, sampling budget and background
	CameraConfig renderer.CameraConfig // Shutter interval also bounds the BVH
	Primitives   []geometry.Primitive  // Objects in the scene
}

// Options parameterise the scene builders
type Options struct {
	Seed      int64  // Seed for randomly placed objects and noise textures
	ImagePath string // Optional image texture used by scenes that support one
}

// DefaultOptions returns the options the built-in scenes are tuned for
func DefaultOptions() Options {
	return Options{Seed: 42}
}

// BuildError reports which scene failed to build, at which stage and why.
// Err names the offending primitive.
type BuildError struct {
	Scene string
	Stage string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("scene %q: %s: %v", e.Scene, e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Add appends primitives to the scene
func (s *Scene) Add(prims ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, prims...)
}

// Build validates every material in the scene and builds the BVH over the
// camera's shutter interval. It must succeed before any worker starts.
func (s *Scene) Build() (*geometry.BVH, error) {
	for i, prim := range s.Primitives {
		for _, mat := range geometry.Materials(prim) {
			if err := material.Validate(mat); err != nil {
				return nil, &BuildError{
					Scene: s.Name,
					Stage: "material validation",
					Err:   fmt.Errorf("primitive %d (%s): %w", i, geometry.Describe(prim), err),
				}
			}
		}
	}

	bvh, err := geometry.NewBVH(s.Primitives, s.CameraConfig.Time0, s.CameraConfig.Time1)
	if err != nil {
		return nil, &BuildError{Scene: s.Name, Stage: "bvh construction", Err: err}
	}
	return bvh, nil
}

// Camera creates the scene's camera for the aspect ratio of its image
func (s *Scene) Camera() *renderer.Camera {
	config := s.CameraConfig
	if config.AspectRatio <= 0 {
		config.AspectRatio = s.Params.AspectRatio
	}
	return renderer.NewCamera(config)
}

// Job builds the scene and packages it as a render job
func (s *Scene) Job() (renderer.Job, error) {
	world, err := s.Build()
	if err != nil {
		return renderer.Job{}, err
	}
	return renderer.Job{
		Name:   s.Name,
		Params: s.Params,
		Camera: s.Camera(),
		World:  world,
	}, nil
}

// PrimitiveCount returns the number of leaf primitives, counting through
// lists, nested BVHs and box faces.
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, prim := range s.Primitives {
		count += countPrimitives(prim)
	}
	return count
}

func countPrimitives(prim geometry.Primitive) int {
	switch p := prim.(type) {
	case *geometry.List:
		count := 0
		for _, item := range p.Items() {
			count += countPrimitives(item)
		}
		return count
	case *geometry.BVH:
		count := 0
		for _, item := range p.Primitives() {
			count += countPrimitives(item)
		}
		return count
	case *geometry.Box:
		return 6
	case *geometry.Translate:
		return countPrimitives(p.Inner)
	case *geometry.RotateY:
		return countPrimitives(p.Inner)
	case *geometry.ConstantMedium:
		return countPrimitives(p.Boundary)
	default:
		return 1
	}
}

// lookFrom is the usual camera setup: Y up, no defocus, shutter open over [0, 1]
func lookFrom(center, lookAt core.Vec3, vfov float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center: center,
		LookAt: lookAt,
		Up:     core.NewVec3(0, 1, 0),
		VFov:   vfov,
		Time0:  0,
		Time1:  1,
	}
}
