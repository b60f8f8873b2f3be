// Package camera projects world points onto a rendering surface and turns
// surface points back into world-space rays.
package camera

import (
	"math"

	"dice-cube-renderer/internal/mathutil"
)

// Framework defaults for a camera node with no explicit projection.
const (
	DefaultYFov  = 60.0
	DefaultZNear = 1.0
	DefaultZFar  = 100.0
)

// Camera is a perspective camera looking down its local -Z axis. The
// vertical field of view is in degrees.
type Camera struct {
	Position mathutil.Vec3
	YFov     float64
	ZNear    float64
	ZFar     float64
}

// New returns a camera at pos with default projection.
func New(pos mathutil.Vec3) Camera {
	return Camera{
		Position: pos,
		YFov:     DefaultYFov,
		ZNear:    DefaultZNear,
		ZFar:     DefaultZFar,
	}
}

// Viewport is the rendering surface's rectangle inside its host view.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// ToSurface translates a point in view space to surface-local coordinates.
// ok is false when the point lies outside the surface.
func (vp Viewport) ToSurface(x, y float64) (sx, sy float64, ok bool) {
	sx, sy = x-vp.X, y-vp.Y
	ok = sx >= 0 && sy >= 0 && sx < vp.Width && sy < vp.Height
	return sx, sy, ok
}

func (c Camera) focal() float64 {
	fov := c.YFov
	if fov <= 0 {
		fov = DefaultYFov
	}
	return 1 / math.Tan(mathutil.Deg2Rad(fov/2))
}

// Project maps a world point to surface pixels. depth is the distance along
// the viewing axis; ok is false for points outside the near/far range.
func (c Camera) Project(p mathutil.Vec3, vp Viewport) (sx, sy, depth float64, ok bool) {
	v := p.Sub(c.Position)
	depth = -v[2]
	if depth < c.ZNear || depth > c.ZFar || vp.Height <= 0 {
		return 0, 0, depth, false
	}

	f := c.focal()
	aspect := vp.Width / vp.Height
	ndcX := f / aspect * v[0] / depth
	ndcY := f * v[1] / depth

	sx = (ndcX + 1) / 2 * vp.Width
	sy = (1 - ndcY) / 2 * vp.Height
	return sx, sy, depth, true
}

// Ray returns the world-space ray through surface point (sx, sy).
// dir is normalized.
func (c Camera) Ray(sx, sy float64, vp Viewport) (origin, dir mathutil.Vec3) {
	f := c.focal()
	aspect := 1.0
	if vp.Height > 0 {
		aspect = vp.Width / vp.Height
	}

	ndcX := 2*sx/vp.Width - 1
	ndcY := 1 - 2*sy/vp.Height

	dir = mathutil.Vec3{ndcX * aspect / f, ndcY / f, -1}.Normalize()
	return c.Position, dir
}
