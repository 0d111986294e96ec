package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

var (
	// ErrPixelRewritten is returned when a framebuffer cell is written a second time
	ErrPixelRewritten = errors.New("renderer: pixel written twice")
	// ErrPixelOutOfBounds is returned for writes outside the framebuffer
	ErrPixelOutOfBounds = errors.New("renderer: pixel out of bounds")
)

// writtenBit marks a cell that holds a finished pixel
const writtenBit = 1 << 24

// Framebuffer holds finished 8-bit RGB pixels. Each cell may be written
// exactly once, from any goroutine, without locking.
type Framebuffer struct {
	width  int
	height int
	cells  []atomic.Uint32
}

// NewFramebuffer creates an empty framebuffer; row 0 is the top of the image
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		cells:  make([]atomic.Uint32, width*height),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Set stores the pixel at (x, y)
func (f *Framebuffer) Set(x, y int, c color.RGBA) error {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrPixelOutOfBounds, x, y, f.width, f.height)
	}
	packed := writtenBit | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if !f.cells[y*f.width+x].CompareAndSwap(0, packed) {
		return fmt.Errorf("%w: (%d, %d)", ErrPixelRewritten, x, y)
	}
	return nil
}

// At returns the pixel at (x, y) and whether it has been written
func (f *Framebuffer) At(x, y int) (color.RGBA, bool) {
	cell := f.cells[y*f.width+x].Load()
	if cell&writtenBit == 0 {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(cell >> 16), G: uint8(cell >> 8), B: uint8(cell), A: 255}, true
}

// Written returns how many cells hold a finished pixel
func (f *Framebuffer) Written() int {
	count := 0
	for i := range f.cells {
		if f.cells[i].Load()&writtenBit != 0 {
			count++
		}
	}
	return count
}

// Complete reports whether every cell has been written
func (f *Framebuffer) Complete() bool {
	return f.Written() == len(f.cells)
}

// Image copies the framebuffer into an RGBA image. Unwritten cells are transparent black.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if c, ok := f.At(x, y); ok {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

// ToRGBA averages a sample sum, applies gamma 2 and quantizes to 8 bits
func ToRGBA(sum core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float64(samples)
	return color.RGBA{
		R: quantize(sum.X() * scale),
		G: quantize(sum.Y() * scale),
		B: quantize(sum.Z() * scale),
		A: 255,
	}
}

func quantize(linear float64) uint8 {
	if !(linear > 0) {
		return 0
	}
	return uint8(255 * mgl64.Clamp(math.Sqrt(linear), 0, 0.999))
}
