package engine

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"flappy/internal/logger"
	"flappy/internal/util"
	"flappy/pkg/assets"
	"flappy/pkg/config"
)

// uploadTexture creates an RGBA texture from an image whose row 0 is the
// bottom of the picture
func uploadTexture(img *image.NRGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Bounds().Dx()),
		int32(img.Bounds().Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// uploadAlphaTexture creates a single-channel texture from a glyph atlas
func uploadAlphaTexture(img *image.Alpha) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Rows of an Alpha image are tightly packed
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RED,
		int32(img.Bounds().Dx()),
		int32(img.Bounds().Dy()),
		0,
		gl.RED,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// loadTextures uploads every texture in the manifest. A texture that
// cannot be loaded is logged and left as handle 0.
func loadTextures(manifest config.AssetManifest, log *logger.Logger) map[string]uint32 {
	ids := manifest.IDsByType(config.AssetTypeTexture)
	textures := make(map[string]uint32, len(ids))

	var maxTextureSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTextureSize)
	maxSize := int(max(maxTextureSize, 1024))

	if missing := manifest.Missing(util.FileExists); len(missing) > 0 {
		log.Warnf("Missing asset files: %v", missing)
	}

	for _, id := range ids {
		textures[id] = 0

		path, err := manifest.Path(id)
		if err != nil {
			log.WithField("asset", id).Warnf("No path for texture: %v", err)
			continue
		}
		img, err := assets.LoadImage(path)
		if err != nil {
			log.WithField("asset", id).Warnf("Texture failed to load: %v", err)
			continue
		}
		if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w > maxSize || h > maxSize {
			scale := float64(maxSize) / float64(max(w, h))
			img = assets.Scale(img, max(int(float64(w)*scale), 1), max(int(float64(h)*scale), 1))
			log.WithField("asset", id).Warnf("Texture %dx%d exceeds %d, downscaled", w, h, maxSize)
		}
		textures[id] = uploadTexture(img)
		log.WithField("asset", id).Debugf("Loaded texture %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return textures
}
