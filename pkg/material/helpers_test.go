package material

import "github.com/df07/go-stochastic-raytracer/pkg/core"

// fixedSampler returns the same values on every call
type fixedSampler struct {
	one   float64
	two   core.Vec2
	three core.Vec3
}

func (f fixedSampler) Get1D() float64   { return f.one }
func (f fixedSampler) Get2D() core.Vec2 { return f.two }
func (f fixedSampler) Get3D() core.Vec3 { return f.three }

func frontHit(point, normal core.Vec3, m Material) *HitRecord {
	return &HitRecord{
		Point:     point,
		Normal:    normal,
		T:         1.0,
		FrontFace: true,
		Material:  m,
	}
}
