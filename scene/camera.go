package scene

import "math"

// nearPlane is the closest distance in front of the camera that projects.
const nearPlane = 0.1

// Camera is a perspective camera on the +Z axis looking towards the origin.
type Camera struct {
	Position Vec3
	// FOV is the vertical field of view in degrees.
	FOV    float64
	Width  float64
	Height float64
}

// NewCamera returns the landing camera: 10 units back, 25° field of view.
func NewCamera(width, height float64) Camera {
	return Camera{
		Position: Vec3{0, 0, 10},
		FOV:      25,
		Width:    width,
		Height:   height,
	}
}

// focal is the projection scale in pixels per unit at distance 1.
func (c Camera) focal() float64 {
	return (c.Height / 2) / math.Tan(c.FOV*math.Pi/360)
}

// Project maps a world point to screen pixels. depth is the distance along
// the view axis; ok is false for points behind the near plane.
func (c Camera) Project(p Vec3) (x, y, depth float64, ok bool) {
	depth = c.Position.Z - p.Z
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := c.focal() / depth
	x = c.Width/2 + (p.X-c.Position.X)*f
	y = c.Height/2 - (p.Y-c.Position.Y)*f
	return x, y, depth, true
}

// PixelsPerUnit is the on-screen size of one world unit at depth.
func (c Camera) PixelsPerUnit(depth float64) float64 {
	if depth < nearPlane {
		return 0
	}
	return c.focal() / depth
}
