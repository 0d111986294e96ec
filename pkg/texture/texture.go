package texture

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Texture provides spatially-varying colors for materials.
// Implementations must be pure: workers call Value concurrently.
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and world point p
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Bounded is implemented by textures that can report an upper bound on every
// channel they return. Material validation uses it to reject albedos above 1.
type Bounded interface {
	Upper() core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidRGB creates a new solid color source from channel values
func NewSolidRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// Value returns the solid color regardless of coordinates
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

func (s *SolidColor) Upper() core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D pattern driven by the
// sign of sin(scale·x)·sin(scale·y)·sin(scale·z)
type Checker struct {
	Even  Texture
	Odd   Texture
	Scale float64
}

// NewChecker creates a checker texture with the classic frequency of 10
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: 10}
}

// NewCheckerRGB creates a checker texture between two solid colors
func NewCheckerRGB(even, odd core.Vec3) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X()) * math.Sin(c.Scale*p.Y()) * math.Sin(c.Scale*p.Z())
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Upper is the component-wise max of both halves; an unbounded half makes the checker unbounded
func (c *Checker) Upper() core.Vec3 {
	even, okEven := c.Even.(Bounded)
	odd, okOdd := c.Odd.(Bounded)
	if !okEven || !okOdd {
		inf := math.Inf(1)
		return core.NewVec3(inf, inf, inf)
	}
	return core.MaxVec(even.Upper(), odd.Upper())
}
