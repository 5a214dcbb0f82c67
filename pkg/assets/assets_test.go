package assets

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImageFlipsRows(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 128}
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 2, blue)

	path := filepath.Join(t.TempDir(), "pipe.png")
	writePNG(t, path, src)

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())
	assert.Equal(t, red, img.NRGBAAt(0, 2))
	assert.Equal(t, blue, img.NRGBAAt(1, 0))
}

func TestLoadImageJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	path := filepath.Join(t.TempDir(), "menu-bg.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, src, nil))
	require.NoError(t, f.Close())

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 4, img.Bounds().Dy())
	assert.Equal(t, uint8(255), img.NRGBAAt(3, 1).A)
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = LoadImage(bad)
	assert.Error(t, err)
}

func TestFlipVerticalOddHeight(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 3))
	for y := 0; y < 3; y++ {
		img.SetNRGBA(0, y, color.NRGBA{R: uint8(y), A: 255})
	}
	FlipVertical(img)
	assert.Equal(t, uint8(2), img.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(1), img.NRGBAAt(0, 1).R)
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 2).R)
}

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	out := Scale(src, 2, 8)
	assert.Equal(t, image.Rect(0, 0, 2, 8), out.Bounds())
}

func TestLoadFace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))

	face, err := LoadFace(path, 32)
	require.NoError(t, err)
	defer face.Close()

	assert.Greater(t, face.Metrics().Height.Ceil(), 20)
	adv, ok := face.GlyphAdvance('W')
	assert.True(t, ok)
	assert.Greater(t, adv.Ceil(), 0)
}

func TestLoadFaceErrors(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "none.ttf"), 32)
	assert.Error(t, err)

	_, err = ParseFace([]byte("garbage"), 32)
	assert.Error(t, err)

	_, err = ParseFace(goregular.TTF, 0)
	assert.Error(t, err)

	assert.NotNil(t, FallbackFace())
}
