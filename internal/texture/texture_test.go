package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"dice-cube-renderer/internal/facetex"
	"dice-cube-renderer/internal/pips"
)

func solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func writeImage(t *testing.T, path string, img image.Image, enc func(io.Writer, image.Image) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, enc(f, img))
}

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	writeImage(t, path, solid(c), png.Encode)
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "face2.png"), color.NRGBA{255, 0, 0, 255})
	writePNG(t, filepath.Join(dir, "5.png"), color.NRGBA{0, 255, 0, 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "5.jpg"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7.png"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())

	p, ok := idx.ResolvePath(2)
	assert.True(t, ok)
	assert.Equal(t, "face2.png", filepath.Base(p))

	p, ok = idx.ResolvePath(5)
	assert.True(t, ok)
	assert.Equal(t, "5.png", filepath.Base(p), "png outranks jpg")

	_, ok = idx.ResolvePath(1)
	assert.False(t, ok)
}

func TestBuildIndexMissingDir(t *testing.T) {
	assert.Equal(t, 0, BuildIndex(filepath.Join(t.TempDir(), "nope")).Len())
	assert.Equal(t, 0, BuildIndex("").Len())
}

func TestCacheUsesSkinThenProcedural(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "3.png"), color.NRGBA{10, 20, 30, 255})

	c := NewCache(BuildIndex(dir), facetex.DefaultStyle())

	skin := c.Resolve(3)
	require.NotNil(t, skin)
	assert.Equal(t, 8, skin.Bounds().Dx())
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, skin.NRGBAAt(0, 0))

	drawn := c.Resolve(1)
	require.NotNil(t, drawn)
	assert.Equal(t, pips.CanvasSize, drawn.Bounds().Dx())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, drawn.NRGBAAt(128, 128))

	assert.Same(t, drawn, c.Resolve(1), "second resolve is cached")
}

func TestCacheFallsBackOnBrokenSkin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "4.png"), []byte("not a png"), 0644))

	img := NewCache(BuildIndex(dir), facetex.DefaultStyle()).Resolve(4)
	require.NotNil(t, img)
	assert.Equal(t, pips.CanvasSize, img.Bounds().Dx())
}

func TestLoadTextureFormats(t *testing.T) {
	want := color.NRGBA{10, 20, 30, 255}
	tests := []struct {
		name  string
		file  string
		enc   func(io.Writer, image.Image) error
		delta float64
	}{
		{"png", "1.png", png.Encode, 0},
		{"jpeg", "2.jpg", func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: 100})
		}, 4},
		{"tga", "3.tga", tga.Encode, 0},
		{"bmp", "4.BMP", bmp.Encode, 0},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeImage(t, path, solid(want), tt.enc)

			img, err := LoadTexture(path)
			require.NoError(t, err)
			assert.Equal(t, 8, img.Bounds().Dx())
			assert.Equal(t, 8, img.Bounds().Dy())
			got := img.NRGBAAt(4, 4)
			assert.InDelta(t, want.R, got.R, tt.delta)
			assert.InDelta(t, want.G, got.G, tt.delta)
			assert.InDelta(t, want.B, got.B, tt.delta)
			assert.Equal(t, uint8(255), got.A)
		})
	}
}

func TestCacheLoadsJPEGAndBMPSkins(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "face5.jpg"), solid(color.NRGBA{200, 200, 200, 255}), func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, nil)
	})
	writeImage(t, filepath.Join(dir, "6.bmp"), solid(color.NRGBA{1, 2, 3, 255}), bmp.Encode)

	c := NewCache(BuildIndex(dir), facetex.DefaultStyle())
	assert.Equal(t, 8, c.Resolve(5).Bounds().Dx())
	assert.Equal(t, 8, c.Resolve(6).Bounds().Dx())
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, c.Resolve(6).NRGBAAt(0, 0))
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadTexture(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "1.gif")
	require.NoError(t, os.WriteFile(bad, []byte("GIF89a"), 0644))
	_, err = LoadTexture(bad)
	assert.ErrorContains(t, err, "unknown extension")

	broken := filepath.Join(dir, "2.png")
	require.NoError(t, os.WriteFile(broken, []byte("not a png"), 0644))
	_, err = LoadTexture(broken)
	assert.ErrorContains(t, err, "decode")
}
