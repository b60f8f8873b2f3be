// Package facetex rasterizes die faces: a flat background with one filled
// disc per pip.
package facetex

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"

	"dice-cube-renderer/internal/pips"
)

// Style holds the fixed look of a face texture.
type Style struct {
	Size       int
	DotRadius  float64
	Dot        color.NRGBA
	Background color.NRGBA
}

// DefaultStyle returns the 256px black-on-white style.
func DefaultStyle() Style {
	return Style{
		Size:       pips.CanvasSize,
		DotRadius:  pips.DotRadius,
		Dot:        color.NRGBA{0, 0, 0, 255},
		Background: color.NRGBA{255, 255, 255, 255},
	}
}

// Rasterize draws dots onto a fresh Size×Size image.
//
// It never fails. A non-positive Size cannot back a drawing surface and yields
// an empty image with zero bounds; a fill error leaves the background-only
// image.
func Rasterize(dots []pips.Point, st Style) *image.NRGBA {
	if st.Size <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	dc := gg.NewContext(st.Size, st.Size)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(st.Background))
	blank := toNRGBA(dc.Image())

	dc.SetColor(st.Dot)
	for _, p := range dots {
		dc.DrawCircle(p.X, p.Y, st.DotRadius)
		if err := dc.Fill(); err != nil {
			return blank
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return blank
	}
	return toNRGBA(dc.Image())
}

// Face rasterizes the pip layout for value v.
func Face(v pips.FaceValue, st Style) *image.NRGBA {
	return Rasterize(pips.Layout(v, float64(st.Size)), st)
}

// Set holds one texture per face value; index 0 is unused.
type Set [7]*image.NRGBA

// NewSet rasterizes all six faces.
func NewSet(st Style) Set {
	var s Set
	for v := pips.FaceValue(1); v <= 6; v++ {
		s[v] = Face(v, st)
	}
	return s
}

// Get returns the texture for v, or nil when v is out of range.
func (s Set) Get(v pips.FaceValue) *image.NRGBA {
	if !v.Valid() {
		return nil
	}
	return s[v]
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
