package scene

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = 32
	lastGlyph    = 126
	atlasColumns = 16
)

// Glyph is the atlas cell of one character
type Glyph struct {
	Cell    image.Rectangle
	Advance int
}

// GlyphAtlas holds printable ASCII rasterized into a single alpha image.
// Every cell has the same size; the baseline sits Ascent pixels below the
// top of the cell.
type GlyphAtlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	CellWidth  int
	CellHeight int
	Ascent     int
}

// BuildGlyphAtlas rasterizes the printable ASCII range of face
func BuildGlyphAtlas(face font.Face) *GlyphAtlas {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	cellH := ascent + metrics.Descent.Ceil()

	cellW := 1
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		if adv, ok := face.GlyphAdvance(r); ok {
			cellW = max(cellW, adv.Ceil())
		}
	}
	cellH = max(cellH, 1)

	count := lastGlyph - firstGlyph + 1
	rows := (count + atlasColumns - 1) / atlasColumns
	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))

	atlas := &GlyphAtlas{
		Image:      img,
		Glyphs:     make(map[rune]Glyph, count),
		CellWidth:  cellW,
		CellHeight: cellH,
		Ascent:     ascent,
	}

	drawer := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i := 0; i < count; i++ {
		r := rune(firstGlyph + i)
		x0 := (i % atlasColumns) * cellW
		y0 := (i / atlasColumns) * cellH
		cell := image.Rect(x0, y0, x0+cellW, y0+cellH)

		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv = fixed.I(cellW)
		}

		// Clip drawing to the cell so wide glyphs cannot bleed into neighbours
		drawer.Dst = img.SubImage(cell).(*image.Alpha)
		drawer.Dot = fixed.P(x0, y0+ascent)
		drawer.DrawString(string(r))

		atlas.Glyphs[r] = Glyph{Cell: cell, Advance: adv.Ceil()}
	}
	return atlas
}

// glyph returns the glyph for r, or '?' for anything outside the atlas
func (a *GlyphAtlas) glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	g, ok := a.Glyphs['?']
	return g, ok
}

// Measure returns the width of text in pixels at the given scale
func (a *GlyphAtlas) Measure(text string, scale float32) float32 {
	width := float32(0)
	for _, r := range text {
		if r < firstGlyph {
			continue
		}
		if g, ok := a.glyph(r); ok {
			width += float32(g.Advance) * scale
		}
	}
	return width
}

// Layout builds two triangles per printable character of text, starting at
// (x, y) in pixels with y at the bottom of the line. Each vertex is
// pos.x, pos.y, u, v.
func (a *GlyphAtlas) Layout(text string, x, y, scale float32) []float32 {
	atlasW := float32(a.Image.Bounds().Dx())
	atlasH := float32(a.Image.Bounds().Dy())
	w := float32(a.CellWidth) * scale
	h := float32(a.CellHeight) * scale

	vertices := make([]float32, 0, len(text)*6*4)
	pen := x
	for _, r := range text {
		if r < firstGlyph {
			continue
		}
		g, ok := a.glyph(r)
		if !ok {
			continue
		}

		u0 := float32(g.Cell.Min.X) / atlasW
		u1 := float32(g.Cell.Max.X) / atlasW
		vTop := float32(g.Cell.Min.Y) / atlasH
		vBottom := float32(g.Cell.Max.Y) / atlasH

		x0, x1 := pen, pen+w
		y0, y1 := y, y+h
		vertices = append(vertices,
			x0, y1, u0, vTop,
			x0, y0, u0, vBottom,
			x1, y0, u1, vBottom,

			x0, y1, u0, vTop,
			x1, y0, u1, vBottom,
			x1, y1, u1, vTop,
		)
		pen += float32(g.Advance) * scale
	}
	return vertices
}
