package renderer

import (
	"fmt"
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates onto world-space rays through its inverse
// view transform. Construction derives the pixel size from the field of
// view and the aspect ratio; after that the camera is immutable apart from
// SetTransform.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Mat4
	inverse    core.Mat4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hSize, vSize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hSize,
		VSize:       vSize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hSize) / float64(vSize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hSize)
	return c
}

// SetTransform replaces the view transform, recomputing the cached
// inverse. A non-invertible transform is a configuration error and leaves
// the camera unchanged.
func (c *Camera) SetTransform(m core.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("setting camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the view transform
func (c *Camera) Transform() core.Mat4 {
	return c.transform
}

// PixelSize returns the world-space size of one pixel on the canvas plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the given
// pixel. The canvas sits one unit in front of the camera at z=-1.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulVec(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulVec(core.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()
	return core.NewRay(origin, direction)
}
