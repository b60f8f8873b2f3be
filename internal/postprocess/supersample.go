// Package postprocess turns supersampled renders into output-size frames.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled render down to width×height with a
// Catmull-Rom filter. The filter runs on premultiplied colour (x/image/draw
// premultiplies NRGBA sources itself) so partly transparent edges keep
// their hue. An invalid target, or one not smaller than img, returns img.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if width <= 0 || height <= 0 || (b.Dx() <= width && b.Dy() <= height) {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	for i := 0; i < len(scaled.Pix); i += 4 {
		a := scaled.Pix[i+3]
		out.Pix[i+3] = a
		switch a {
		case 0:
		case 0xff:
			copy(out.Pix[i:i+3], scaled.Pix[i:i+3])
		default:
			for c := i; c < i+3; c++ {
				out.Pix[c] = unpremultiply(scaled.Pix[c], a)
			}
		}
	}
	return out
}

// unpremultiply undoes alpha scaling. Catmull-Rom can ring past alpha at
// edges, so the result saturates at 255.
func unpremultiply(c, a uint8) uint8 {
	v := (uint32(c)*0xff + uint32(a)/2) / uint32(a)
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
