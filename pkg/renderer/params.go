package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// ErrInvalidParams is wrapped by ImageParams.Validate failures
var ErrInvalidParams = errors.New("renderer: invalid image parameters")

// ImageParams describes the image to produce and the sampling budget per pixel
type ImageParams struct {
	AspectRatio     float64
	Width           int
	Height          int // Derived from Width and AspectRatio
	SamplesPerPixel int
	MaxDepth        int
	// Background lights escaping rays; nil selects the sky gradient
	Background integrator.Background
}

// NewImageParams derives the image height from the width and aspect ratio
func NewImageParams(aspectRatio float64, width, samplesPerPixel, maxDepth int, background integrator.Background) ImageParams {
	return ImageParams{
		AspectRatio:     aspectRatio,
		Width:           width,
		Height:          heightFor(width, aspectRatio),
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Background:      background,
	}
}

// WithWidth returns a copy resized to width, keeping the aspect ratio
func (p ImageParams) WithWidth(width int) ImageParams {
	p.Width = width
	p.Height = heightFor(width, p.AspectRatio)
	return p
}

// Validate checks that the parameters describe a renderable image
func (p ImageParams) Validate() error {
	switch {
	case p.Width < 1 || p.Height < 1:
		return fmt.Errorf("%w: image is %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.SamplesPerPixel < 1:
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidParams, p.SamplesPerPixel)
	case p.MaxDepth < 1:
		return fmt.Errorf("%w: max depth %d", ErrInvalidParams, p.MaxDepth)
	}
	return nil
}

func heightFor(width int, aspectRatio float64) int {
	if aspectRatio <= 0 {
		return width
	}
	return max(1, int(float64(width)/aspectRatio))
}
