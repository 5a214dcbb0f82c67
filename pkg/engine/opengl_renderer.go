package engine

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"flappy/internal/logger"
	"flappy/pkg/config"
	"flappy/pkg/scene"
)

// meshBuffers is a mesh uploaded to the GPU
type meshBuffers struct {
	vertexArray   uint32
	vertexBuffer  uint32
	elementBuffer uint32
	indexCount    int32
}

// OpenGLRenderer draws sprites as textured quads and hands text items to a
// TextRenderer
type OpenGLRenderer struct {
	width  int
	height int
	logger *logger.Logger

	shaderProgram uint32
	modelLocation int32
	meshes        map[scene.MeshID]meshBuffers
	textures      map[string]uint32
	text          *TextRenderer

	mutex sync.Mutex
}

// NewOpenGLRenderer creates the sprite pipeline. A GL context must be
// current on the calling thread.
func NewOpenGLRenderer(cfg *config.Config, log *logger.Logger, width, height int) (*OpenGLRenderer, error) {
	r := &OpenGLRenderer{
		width:  width,
		height: height,
		logger: log,
		meshes: make(map[scene.MeshID]meshBuffers),
	}

	if err := r.initOpenGL(); err != nil {
		return nil, err
	}

	r.textures = loadTextures(cfg.Assets, log)

	text, err := NewTextRenderer(cfg.Assets, log)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to initialize text renderer: %w", err)
	}
	r.text = text

	return r, nil
}

// initOpenGL initializes OpenGL resources
func (r *OpenGLRenderer) initOpenGL() error {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	var err error
	if r.shaderProgram, err = createShaderProgram(spriteVertexShaderSource, spriteFragmentShaderSource); err != nil {
		return err
	}

	gl.UseProgram(r.shaderProgram)
	r.modelLocation = uniform(r.shaderProgram, "model")
	gl.Uniform1i(uniform(r.shaderProgram, "spriteTexture"), 0)

	meshes := scene.Meshes()
	for _, id := range scene.MeshIDs {
		r.meshes[id] = uploadMesh(meshes[id])
	}
	return nil
}

// uploadMesh creates the VAO, VBO and EBO for a mesh
func uploadMesh(mesh scene.Mesh) meshBuffers {
	var b meshBuffers
	b.indexCount = int32(len(mesh.Indices))

	gl.GenVertexArrays(1, &b.vertexArray)
	gl.BindVertexArray(b.vertexArray)

	gl.GenBuffers(1, &b.vertexBuffer)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.elementBuffer)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.elementBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	stride := int32(scene.VertexStride * 4)
	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// Texture coord attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return b
}

// UpdateResolution updates the viewport size
func (r *OpenGLRenderer) UpdateResolution(width, height int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.width = width
	r.height = height
}

// Render draws one frame. Sprites come first, in scene order, then text.
func (r *OpenGLRenderer) Render(sd *scene.SceneData) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	c := sd.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shaderProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	for _, sprite := range sd.Sprites {
		mesh, ok := r.meshes[sprite.Mesh]
		if !ok {
			continue
		}
		model := sprite.Model
		gl.UniformMatrix4fv(r.modelLocation, 1, false, &model[0])
		gl.BindTexture(gl.TEXTURE_2D, r.textures[sprite.Texture])
		gl.BindVertexArray(mesh.vertexArray)
		gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)

	if r.text != nil {
		r.text.Draw(sd.Texts, sd.Width, sd.Height)
	}

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x", errCode)
	}
	return nil
}

// Close releases all OpenGL resources
func (r *OpenGLRenderer) Close() {
	for _, b := range r.meshes {
		gl.DeleteVertexArrays(1, &b.vertexArray)
		gl.DeleteBuffers(1, &b.vertexBuffer)
		gl.DeleteBuffers(1, &b.elementBuffer)
	}
	for _, texture := range r.textures {
		if texture != 0 {
			gl.DeleteTextures(1, &texture)
		}
	}
	if r.text != nil {
		r.text.Close()
	}
	gl.DeleteProgram(r.shaderProgram)
}
