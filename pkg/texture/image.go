package texture

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/loaders"
)

// Image provides color from a decoded 2D image with nearest-neighbour lookup
type Image struct {
	data *loaders.ImageData
}

// NewImage wraps already-decoded pixel data
func NewImage(data *loaders.ImageData) *Image {
	return &Image{data: data}
}

// LoadImage decodes the file at path into an image texture
func LoadImage(path string) (*Image, error) {
	data, err := loaders.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("image texture %s: %w", path, err)
	}
	return NewImage(data), nil
}

// Value maps u across the image and v from bottom (0) to top (1).
// Coordinates outside [0, 1] are clamped to the border.
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.data == nil || t.data.Width == 0 || t.data.Height == 0 {
		// Cyan makes a missing texture obvious in the render
		return core.NewVec3(0, 1, 1)
	}

	u = clamp01(u)
	v = 1 - clamp01(v)

	x := min(int(u*float64(t.data.Width)), t.data.Width-1)
	y := min(int(v*float64(t.data.Height)), t.data.Height-1)

	return t.data.Pixels[y*t.data.Width+x]
}

// Upper is 1 on every channel: decoded pixels are normalised to [0, 1]
func (t *Image) Upper() core.Vec3 {
	return core.NewVec3(1, 1, 1)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
