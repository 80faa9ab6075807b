// Package renderer implements the camera, framebuffer, tile
// decomposition, and bounded-concurrency worker pool that drive the
// integrator across an image.
package renderer

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// CameraConfig is the configuration surface named in the spec: every
// field a caller sets directly; every other Camera field is derived by
// initialize, which NewCamera runs before returning the Camera.
type CameraConfig struct {
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxDepth        int
	VFOV            float64 // vertical field of view, degrees
	LookFrom        core.Point3
	LookAt          core.Point3
	VUp             core.Vec3
	DefocusAngle    float64 // degrees; 0 disables depth of field
	FocusDist       float64
	Background      core.Color
}

// Camera holds a CameraConfig plus every field initialize derives from
// it: viewport basis, per-pixel deltas, defocus disk radii, and the
// stratified-sampling grid size.
type Camera struct {
	CameraConfig

	pixel00Loc   core.Point3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	u, v, w      core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3

	sqrtSPP           int
	recipSqrtSPP      float64
	pixelSamplesScale float64
}

// NewCamera validates cfg and computes every derived field. It returns
// an error for the programmer errors the spec requires to fail fast at
// construction: zero image dimensions, a zero-length view direction, or
// a zero-length up vector.
func NewCamera(cfg CameraConfig) (*Camera, error) {
	if cfg.ImageWidth <= 0 {
		return nil, core.NewConfigError("ImageWidth", "must be positive")
	}
	if cfg.ImageHeight <= 0 {
		return nil, core.NewConfigError("ImageHeight", "must be positive")
	}
	if cfg.SamplesPerPixel <= 0 {
		return nil, core.NewConfigError("SamplesPerPixel", "must be positive")
	}
	if cfg.LookFrom == cfg.LookAt {
		return nil, core.NewConfigError("LookFrom/LookAt", "must not coincide (zero-length view direction)")
	}
	if cfg.VUp.NearZero() {
		return nil, core.NewConfigError("VUp", "must not be zero-length")
	}

	c := &Camera{CameraConfig: cfg}
	c.initialize()
	return c, nil
}

// initialize computes the viewport basis, pixel deltas, defocus disk
// radii, and stratified-sampling grid derived from CameraConfig.
func (c *Camera) initialize() {
	theta := c.VFOV * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * c.FocusDist
	aspectRatio := float64(c.ImageWidth) / float64(c.ImageHeight)
	viewportWidth := viewportHeight * aspectRatio

	c.w = c.LookFrom.Subtract(c.LookAt).Unit()
	c.u = c.VUp.Cross(c.w).Unit()
	c.v = c.w.Cross(c.u)

	viewportU := c.u.Multiply(viewportWidth)
	viewportV := c.v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.ImageHeight))

	viewportUpperLeft := c.LookFrom.
		Subtract(c.w.Multiply(c.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := c.FocusDist * math.Tan(c.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = c.u.Multiply(defocusRadius)
	c.defocusDiskV = c.v.Multiply(defocusRadius)

	c.sqrtSPP = int(math.Sqrt(float64(c.SamplesPerPixel)))
	if c.sqrtSPP < 1 {
		c.sqrtSPP = 1
	}
	c.recipSqrtSPP = 1.0 / float64(c.sqrtSPP)
	c.pixelSamplesScale = 1.0 / float64(c.sqrtSPP*c.sqrtSPP)
}

// SqrtSPP returns floor(sqrt(samples_per_pixel)), the side length of
// the stratified sub-pixel sampling grid.
func (c *Camera) SqrtSPP() int { return c.sqrtSPP }

// PixelSamplesScale returns 1 / sqrt_spp^2, the weight applied to each
// stratified sample when averaging a pixel.
func (c *Camera) PixelSamplesScale() float64 { return c.pixelSamplesScale }

// GetRay constructs a camera ray for pixel (i, j), stratified sample
// (si, sj) of the sqrt_spp x sqrt_spp grid. The ray originates at the
// camera center, or at a uniform sample of the defocus disk when
// DefocusAngle > 0, and carries a uniform [0,1) time for motion blur.
func (c *Camera) GetRay(i, j, si, sj int, rng core.RNG) core.Ray {
	dx, dy := core.StratifiedOffset2D(si, sj, c.sqrtSPP, rng)

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + dx)).
		Add(c.pixelDeltaV.Multiply(float64(j) + dy))

	origin := c.LookFrom
	if c.DefocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	direction := pixelSample.Subtract(origin)
	time := rng.Float64()

	return core.NewRayAtTime(origin, direction, time)
}

// defocusDiskSample returns a point sampled uniformly from the camera's
// defocus disk, centered on LookFrom.
func (c *Camera) defocusDiskSample(rng core.RNG) core.Point3 {
	p := core.RandomInUnitDisk(rng)
	return c.LookFrom.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
