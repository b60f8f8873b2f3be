package raster

import (
	"image"
	"math"
)

// Vertex is a projected triangle corner. InvW is 1/depth, used both for
// depth testing and perspective-correct UV interpolation.
type Vertex struct {
	X, Y float64
	InvW float64
	U, V float64
}

// Shading selects how texels are lit. Lit false writes texels unchanged.
type Shading struct {
	Lit      bool
	Factor   [3]float64 // linear per-channel light factor when Lit
	InvGamma float64
}

// RasterizeTriangle rasterizes a single textured triangle with z-buffer and
// perspective-correct texture coordinates.
//
// Designed for zero allocation in the inner loop. Lighting is flat (one
// factor per triangle).
func RasterizeTriangle(fb *FrameBuffer, v [3]Vertex, tex *image.NRGBA, sh *Shading) {
	x0, y0 := v[0].X, v[0].Y
	x1, y1 := v[1].X, v[1].Y
	x2, y2 := v[2].X, v[2].Y

	hasTex := tex != nil && !tex.Rect.Empty()

	// Perspective-correct attributes: interpolate u/w, v/w, 1/w linearly.
	q0, q1, q2 := v[0].InvW, v[1].InvW, v[2].InvW
	uq0, uq1, uq2 := v[0].U*q0, v[1].U*q1, v[2].U*q2
	vq0, vq1, vq2 := v[0].V*q0, v[1].V*q1, v[2].V*q2

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	w := fb.Width

	// Pixel loop, zero allocations
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * w
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			b0 := (dy12*dsx + dx21*dsy) * invDet
			b1 := (dy20*dsx + dx02*dsy) * invDet
			b2 := 1.0 - b0 - b1

			if b0 < -1e-6 || b1 < -1e-6 || b2 < -1e-6 {
				continue
			}

			q := b0*q0 + b1*q1 + b2*q2
			zIdx := rowOff + sx
			if q <= fb.ZBuf[zIdx] {
				continue
			}

			var cr, cg, cb, ca uint8 = 255, 255, 255, 255
			if hasTex {
				u := (b0*uq0 + b1*uq1 + b2*uq2) / q
				tv := (b0*vq0 + b1*vq1 + b2*vq2) / q
				cr, cg, cb, ca = SampleTexture(tex, u, tv)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = q

			pxIdx := zIdx * 4
			if sh.Lit {
				cr = clamp255(math.Pow(srgbToLinear[cr]*sh.Factor[0], sh.InvGamma) * 255)
				cg = clamp255(math.Pow(srgbToLinear[cg]*sh.Factor[1], sh.InvGamma) * 255)
				cb = clamp255(math.Pow(srgbToLinear[cb]*sh.Factor[2], sh.InvGamma) * 255)
			}
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
