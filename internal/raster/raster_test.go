package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dice-cube-renderer/internal/anim"
	"dice-cube-renderer/internal/camera"
	"dice-cube-renderer/internal/dice"
	"dice-cube-renderer/internal/facetex"
	"dice-cube-renderer/internal/mathutil"
	"dice-cube-renderer/internal/scene"
	"dice-cube-renderer/internal/texture"
)

const (
	testW = 600
	testH = 400
)

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func diceScene() *scene.Scene {
	return scene.Compose(dice.Assemble(texture.NewCache(nil, facetex.DefaultStyle())))
}

func pixelAt(t *testing.T, img *image.NRGBA, sc *scene.Scene, p mathutil.Vec3) color.NRGBA {
	t.Helper()
	vp := camera.Viewport{Width: float64(img.Bounds().Dx()), Height: float64(img.Bounds().Dy())}
	sx, sy, _, ok := sc.Camera.Project(p, vp)
	require.True(t, ok)
	return img.NRGBAAt(int(sx), int(sy))
}

func TestRenderSceneFrontFaces(t *testing.T) {
	sc := diceScene()
	img := RenderScene(sc, nil, testW, testH, 1)
	require.Equal(t, image.Rect(0, 0, testW, testH), img.Bounds())

	assert.Equal(t, scene.Gray, img.NRGBAAt(2, 2), "background")
	assert.Equal(t, scene.Gray, pixelAt(t, img, sc, mathutil.Vec3{0, 0, 0}), "gap between dice")

	for _, x := range []float64{-0.6, 0.6} {
		// Face 1 faces the camera: centre pip, white margin.
		assert.Equal(t, black, pixelAt(t, img, sc, mathutil.Vec3{x, 0, 0.25}))
		assert.Equal(t, white, pixelAt(t, img, sc, mathutil.Vec3{x - 0.2, 0.2, 0.25}))
	}
}

func TestRenderScenePose(t *testing.T) {
	sc := diceScene()
	// Turn the right die so its +X face (value 2, no centre pip) faces front.
	pose := anim.Pose{scene.RightDie: mathutil.RotY(-math.Pi / 2)}
	img := RenderScene(sc, pose, testW, testH, 1)

	assert.Equal(t, black, pixelAt(t, img, sc, mathutil.Vec3{-0.6, 0, 0.25}))
	assert.Equal(t, white, pixelAt(t, img, sc, mathutil.Vec3{0.6, 0, 0.25}))
}

func TestRenderSceneSupersample(t *testing.T) {
	img := RenderScene(diceScene(), nil, 60, 40, 3)
	assert.Equal(t, image.Rect(0, 0, 180, 120), img.Bounds())
}

func TestRenderNilScene(t *testing.T) {
	img := RenderScene(nil, nil, 10, 10, 1)
	require.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(5, 5))

	assert.True(t, RenderScene(diceScene(), nil, 0, 10, 1).Bounds().Empty())
}

func TestRasterizeTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	far := [3]Vertex{{X: 0, Y: 0, InvW: 0.1}, {X: 8, Y: 0, InvW: 0.1}, {X: 0, Y: 8, InvW: 0.1}}
	near := far
	for i := range near {
		near[i].InvW = 0.5
	}

	red := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	red.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	RasterizeTriangle(fb, near, red, &Shading{})
	RasterizeTriangle(fb, far, nil, &Shading{})

	i := (1*8 + 1) * 4
	assert.Equal(t, []uint8{255, 0, 0, 255}, fb.Color[i:i+4], "nearer triangle kept")
	assert.InDelta(t, 0.5, fb.ZBuf[1*8+1], 1e-12)

	j := (7*8 + 7) * 4
	assert.Equal(t, []uint8{0, 0, 0, 0}, fb.Color[j:j+4], "outside triangle untouched")
}

func TestSampleTextureClamps(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})

	r, _, _, _ := SampleTexture(tex, 1, 0)
	assert.Equal(t, uint8(255), r, "u=1 stays on the right edge")
	r, _, _, _ = SampleTexture(tex, -0.5, 0)
	assert.Equal(t, uint8(0), r)
	r, _, _, _ = SampleTexture(tex, 0.5, 0)
	assert.InDelta(t, 128, int(r), 1)
}

func TestLightConfig(t *testing.T) {
	lc := NewLightConfig(scene.Compose(dice.Mapping{}).Lights)
	assert.InDelta(t, 1.0, lc.Ambient[0], 1e-9)
	require.Len(t, lc.Omni, 1)

	toward := lc.ComputeShade(mathutil.Vec3{}, mathutil.Vec3{0, 1, 1}.Normalize())
	away := lc.ComputeShade(mathutil.Vec3{}, mathutil.Vec3{0, -1, -1}.Normalize())
	assert.InDelta(t, 2.0, toward[1], 1e-9)
	assert.InDelta(t, 1.0, away[1], 1e-9)
}
