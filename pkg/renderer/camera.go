package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually 0,1,0)
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 is a pinhole
	FocusDistance float64   // Distance to the plane in focus; 0 focuses on LookAt
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays for rendering using a thin lens model
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis: right, up, backwards
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1
	}
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Sub(config.LookAt).Len()
	}

	theta := mgl64.DegToRad(config.VFov)
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := core.Unit(config.Center.Sub(config.LookAt))
	u := core.Unit(config.Up.Cross(w))
	v := w.Cross(u)

	horizontal := u.Mul(viewportWidth * focusDistance)
	vertical := v.Mul(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Sub(horizontal.Mul(0.5)).
		Sub(vertical.Mul(0.5)).
		Sub(w.Mul(focusDistance))

	return &Camera{
		config:          config,
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the bottom-left corner. The ray starts on a random point of
// the lens and leaves at a random time within the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Mul(c.lensRadius)
		origin = origin.Add(c.u.Mul(rd.X())).Add(c.v.Mul(rd.Y()))
	}

	time := c.config.Time0
	if c.config.Time1 > c.config.Time0 {
		time = core.RandomRange(sampler, c.config.Time0, c.config.Time1)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(origin)

	return core.NewRayAt(origin, direction, time)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Mul(-1)
}
