package raster

import (
	"math"

	"dice-cube-renderer/internal/mathutil"
	"dice-cube-renderer/internal/scene"
)

// LightConfig holds the scene lights in linear RGB, ready for shading.
type LightConfig struct {
	Ambient  [3]float64
	Omni     []omniLight
	InvGamma float64
}

type omniLight struct {
	Pos   mathutil.Vec3
	Color [3]float64
}

// NewLightConfig gathers the lights of sc.
func NewLightConfig(lights []scene.Light) LightConfig {
	lc := LightConfig{InvGamma: 1.0 / 2.2}
	for _, l := range lights {
		c := [3]float64{
			srgbToLinear[l.Color.R] * l.Intensity,
			srgbToLinear[l.Color.G] * l.Intensity,
			srgbToLinear[l.Color.B] * l.Intensity,
		}
		switch l.Kind {
		case scene.Ambient:
			for k := range lc.Ambient {
				lc.Ambient[k] += c[k]
			}
		case scene.Omni:
			lc.Omni = append(lc.Omni, omniLight{Pos: l.Position, Color: c})
		}
	}
	return lc
}

// ComputeShade returns the per-channel Lambert factor for a surface point
// with the given world normal.
func (lc *LightConfig) ComputeShade(pos, normal mathutil.Vec3) [3]float64 {
	shade := lc.Ambient
	for _, o := range lc.Omni {
		ndl := normal.Dot(o.Pos.Sub(pos).Normalize())
		if ndl <= 0 {
			continue
		}
		for k := range shade {
			shade[k] += ndl * o.Color[k]
		}
	}
	return shade
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}
