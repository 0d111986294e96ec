package renderer

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// TileRenderer renders the pixels of a tile into a shared framebuffer
type TileRenderer struct {
	world       geometry.Hittable
	camera      *Camera
	integrator  integrator.Integrator
	params      ImageParams
	seed        int64
	framebuffer *Framebuffer
	progress    *Progress
}

// RenderTile takes SamplesPerPixel jittered samples for every pixel of tile.
// Each pixel draws from its own generator seeded by (seed, x, y), so the
// result does not depend on which worker renders it.
func (tr *TileRenderer) RenderTile(tile Tile) (TileStats, error) {
	stats := TileStats{}
	width, height := tr.params.Width, tr.params.Height
	// Screen coordinates span [0, 1] from the first to the last pixel center
	sDenominator := float64(max(width-1, 1))
	tDenominator := float64(max(height-1, 1))

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			sampler := core.NewSeededSampler(core.PixelSeed(tr.seed, x, y))

			var sum core.Vec3
			for sample := 0; sample < tr.params.SamplesPerPixel; sample++ {
				jitter := sampler.Get2D()
				s := (float64(x) + jitter.X()) / sDenominator
				// Framebuffer row 0 is the top of the image, screen t = 0 the bottom
				t := (float64(height-1-y) + jitter.Y()) / tDenominator

				ray := tr.camera.GetRay(s, t, sampler)
				sum = sum.Add(tr.integrator.Sample(ray, tr.world, sampler))
			}

			if err := tr.framebuffer.Set(x, y, ToRGBA(sum, tr.params.SamplesPerPixel)); err != nil {
				return stats, err
			}

			stats.Pixels++
			stats.Samples += int64(tr.params.SamplesPerPixel)
			tr.progress.Increment()
		}
	}

	return stats, nil
}
