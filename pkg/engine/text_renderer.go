package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"

	"flappy/internal/logger"
	"flappy/pkg/assets"
	"flappy/pkg/config"
	"flappy/pkg/scene"
)

// TextRenderer draws strings from a glyph atlas in window pixel space
type TextRenderer struct {
	atlas *scene.GlyphAtlas

	shaderProgram      uint32
	projectionLocation int32
	colorLocation      int32
	vertexArray        uint32
	vertexBuffer       uint32
	texture            uint32
}

// NewTextRenderer loads the configured font, falling back to the built-in
// face when it cannot be read
func NewTextRenderer(manifest config.AssetManifest, log *logger.Logger) (*TextRenderer, error) {
	face := loadFace(manifest, log)
	defer face.Close()

	program, err := createShaderProgram(textVertexShaderSource, textFragmentShaderSource)
	if err != nil {
		return nil, err
	}

	t := &TextRenderer{
		atlas:         scene.BuildGlyphAtlas(face),
		shaderProgram: program,
	}
	t.projectionLocation = uniform(program, "projection")
	t.colorLocation = uniform(program, "textColor")
	gl.UseProgram(program)
	gl.Uniform1i(uniform(program, "glyphAtlas"), 0)

	t.texture = uploadAlphaTexture(t.atlas.Image)

	gl.GenVertexArrays(1, &t.vertexArray)
	gl.BindVertexArray(t.vertexArray)
	gl.GenBuffers(1, &t.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vertexBuffer)

	// pos.xy, uv
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	log.Debugf("Glyph atlas %dx%d, cell %dx%d",
		t.atlas.Image.Bounds().Dx(), t.atlas.Image.Bounds().Dy(), t.atlas.CellWidth, t.atlas.CellHeight)
	return t, nil
}

func loadFace(manifest config.AssetManifest, log *logger.Logger) font.Face {
	path, err := manifest.Path(config.AssetFont)
	if err == nil {
		var face font.Face
		if face, err = assets.LoadFace(path, manifest.FontSize); err == nil {
			return face
		}
	}
	log.WithField("asset", config.AssetFont).Errorf("Font failed to load, using built-in face: %v", err)
	return assets.FallbackFace()
}

// Draw renders text items for a window of the given size
func (t *TextRenderer) Draw(items []scene.TextItem, width, height int) {
	if len(items) == 0 {
		return
	}

	projection := mgl32.Ortho2D(0, float32(width), 0, float32(height))

	gl.UseProgram(t.shaderProgram)
	gl.UniformMatrix4fv(t.projectionLocation, 1, false, &projection[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.BindVertexArray(t.vertexArray)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vertexBuffer)

	for _, item := range items {
		x := item.X
		if item.Align == scene.AlignCenter {
			x -= t.atlas.Measure(item.Text, item.Scale) / 2
		}
		vertices := t.atlas.Layout(item.Text, x, item.Y, item.Scale)
		if len(vertices) == 0 {
			continue
		}

		gl.Uniform3f(t.colorLocation, item.Color[0], item.Color[1], item.Color[2])
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))
	}

	gl.BindVertexArray(0)
}

// Close releases all OpenGL resources
func (t *TextRenderer) Close() {
	gl.DeleteVertexArrays(1, &t.vertexArray)
	gl.DeleteBuffers(1, &t.vertexBuffer)
	gl.DeleteTextures(1, &t.texture)
	gl.DeleteProgram(t.shaderProgram)
}
