package scene

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"flappy/pkg/config"
)

// clearScreen moves the cursor home before each frame on a terminal
const clearScreen = "\x1b[H\x1b[2J"

// ASCIIRenderer draws a scene as a character grid. Sprites are rasterized
// by their bounding box after the model transform; text is placed at the
// cell nearest its pixel position.
type ASCIIRenderer struct {
	out    io.Writer
	cols   int
	rows   int
	clear  bool
	glyphs map[string]rune
	grid   [][]rune
	frame  string
	mutex  sync.Mutex
}

// NewASCIIRenderer creates a renderer with a cols x rows grid writing to
// out. With clear set every frame starts by clearing the terminal.
func NewASCIIRenderer(out io.Writer, cols, rows int, clear bool) *ASCIIRenderer {
	r := &ASCIIRenderer{
		out:   out,
		clear: clear,
		glyphs: map[string]rune{
			config.AssetBackground:     ' ',
			config.AssetMenuBackground: ' ',
			config.AssetBackgroundKO:   '.',
			config.AssetPipe:           '#',
			config.AssetBird:           '>',
			config.AssetBirdUp:         '/',
			config.AssetBirdTiltDown:   '\\',
			config.AssetBirdDown:       'v',
			config.AssetBirdKO:         'x',
		},
	}
	r.UpdateResolution(cols, rows)
	return r
}

// UpdateResolution resizes the character grid
func (r *ASCIIRenderer) UpdateResolution(cols, rows int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.cols = max(cols, 1)
	r.rows = max(rows, 1)
	r.grid = make([][]rune, r.rows)
	for y := range r.grid {
		r.grid[y] = make([]rune, r.cols)
	}
}

// Render rasterizes the scene and writes one frame
func (r *ASCIIRenderer) Render(scene *SceneData) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for y := range r.grid {
		for x := range r.grid[y] {
			r.grid[y][x] = ' '
		}
	}

	meshes := Meshes()
	for _, sprite := range scene.Sprites {
		ch, ok := r.glyphs[sprite.Texture]
		if !ok {
			ch = '?'
		}
		r.fillSprite(meshes[sprite.Mesh], sprite.Model, ch)
	}

	for _, text := range scene.Texts {
		r.drawText(scene, text)
	}

	var sb strings.Builder
	if r.clear {
		sb.WriteString(clearScreen)
	}
	for _, row := range r.grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	r.frame = sb.String()

	if r.out == nil {
		return nil
	}
	if _, err := io.WriteString(r.out, r.frame); err != nil {
		return fmt.Errorf("failed to write ascii frame: %w", err)
	}
	return nil
}

// Frame returns the last rendered frame
func (r *ASCIIRenderer) Frame() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.frame
}

// Close is a no-op; the writer belongs to the caller
func (r *ASCIIRenderer) Close() {}

func (r *ASCIIRenderer) fillSprite(mesh Mesh, model mgl32.Mat4, ch rune) {
	x0, y0, x1, y1 := mesh.Bounds()
	a := model.Mul4x1(mgl32.Vec4{x0, y0, 0, 1})
	b := model.Mul4x1(mgl32.Vec4{x1, y1, 0, 1})

	c0, c1 := r.column(min(a.X(), b.X())), r.column(max(a.X(), b.X()))
	r0, r1 := r.row(max(a.Y(), b.Y())), r.row(min(a.Y(), b.Y()))

	for y := max(r0, 0); y <= min(r1, r.rows-1); y++ {
		for x := max(c0, 0); x <= min(c1, r.cols-1); x++ {
			r.grid[y][x] = ch
		}
	}
}

// column maps world x in [-1, 1] to a grid column
func (r *ASCIIRenderer) column(x float32) int {
	return int(math.Floor(float64((x + 1) / 2 * float32(r.cols))))
}

// row maps world y in [-1, 1] to a grid row, top row first
func (r *ASCIIRenderer) row(y float32) int {
	return int(math.Floor(float64((1 - y) / 2 * float32(r.rows))))
}

func (r *ASCIIRenderer) drawText(scene *SceneData, text TextItem) {
	if scene.Width <= 0 || scene.Height <= 0 {
		return
	}
	row := int(float32(r.rows) * (1 - text.Y/float32(scene.Height)))
	col := int(float32(r.cols) * text.X / float32(scene.Width))
	if text.Align == AlignCenter {
		col -= len(text.Text) / 2
	}
	if row < 0 || row >= r.rows {
		return
	}
	for i, ch := range []rune(text.Text) {
		if x := col + i; x >= 0 && x < r.cols {
			r.grid[row][x] = ch
		}
	}
}
