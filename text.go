package main

import (
	"fmt"
	"image"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Character represents a glyph's texture and related data.
type Character struct {
	TextureID     uint32 // ID handle of the glyph texture
	width, height int
	// offset from the pen position on the baseline to the glyph's top-left
	bearingX, bearingY int
	advance            fixed.Int26_6
}

// TextRenderer draws strings from a single font rasterized once into one
// texture per printable ASCII glyph.
type TextRenderer struct {
	characters map[rune]Character
	shader     *Shader
	VAO, VBO   uint32
	lineHeight int
}

func NewTextRenderer(shader *Shader) *TextRenderer {
	tr := &TextRenderer{shader: shader}
	tr.shader.use().setInt("text", 0)

	// configure VAO/VBO for texture quads
	gl.GenVertexArrays(1, &tr.VAO)
	gl.GenBuffers(1, &tr.VBO)
	gl.BindVertexArray(tr.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, int(unsafe.Sizeof(float32(0)))*6*4, gl.Ptr(nil), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*int32(unsafe.Sizeof(float32(0))), gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return tr
}

// Load rasterizes the TTF at fontPath, or the built-in Go font when
// fontPath is empty.
func (tr *TextRenderer) Load(fontPath string, fontSize float64) error {
	fontBytes := goregular.TTF
	if fontPath != "" {
		b, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		fontBytes = b
	}

	ttf, err := opentype.Parse(fontBytes)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	tr.lineHeight = face.Metrics().Height.Ceil()
	tr.characters = make(map[rune]Character)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	for c := rune(32); c < 127; c++ {
		bounds, advance, ok := face.GlyphBounds(c)
		if !ok {
			continue
		}
		minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
		width := bounds.Max.X.Ceil() - minX
		height := bounds.Max.Y.Ceil() - minY

		ch := Character{advance: advance}
		if width > 0 && height > 0 {
			dst := image.NewGray(image.Rect(0, 0, width, height))
			d := font.Drawer{
				Dst:  dst,
				Src:  image.White,
				Face: face,
				Dot:  fixed.P(-minX, -minY),
			}
			d.DrawString(string(c))

			gl.GenTextures(1, &ch.TextureID)
			gl.BindTexture(gl.TEXTURE_2D, ch.TextureID)
			gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(width), int32(height), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(dst.Pix))
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

			ch.width, ch.height = width, height
			ch.bearingX, ch.bearingY = minX, minY
		}
		tr.characters[c] = ch
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// LineHeight is the distance between baselines at scale 1.
func (tr *TextRenderer) LineHeight() float32 { return float32(tr.lineHeight) }

// setProjection maps pixels to clip space with y growing downwards.
func (tr *TextRenderer) setProjection(width, height int) {
	tr.shader.use().setMat4("projection", mgl32.Ortho2D(0, float32(width), float32(height), 0))
}

// RenderText draws text with its baseline starting at (x, y) in pixels.
func (tr *TextRenderer) RenderText(text string, x, y, scale float32, color mgl32.Vec3) {
	tr.shader.use()
	tr.shader.setVec3("textColor", color)
	tr.shader.setBool("solid", false)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(tr.VAO)

	for _, r := range text {
		ch, ok := tr.characters[r]
		if !ok {
			continue
		}
		if ch.TextureID != 0 {
			xpos := x + float32(ch.bearingX)*scale
			ypos := y + float32(ch.bearingY)*scale
			gl.BindTexture(gl.TEXTURE_2D, ch.TextureID)
			tr.drawQuad(xpos, ypos, float32(ch.width)*scale, float32(ch.height)*scale)
		}
		x += float32(ch.advance) / 64 * scale
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// RenderRect fills a rectangle with a translucent color.
func (tr *TextRenderer) RenderRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	tr.shader.use()
	tr.shader.setVec3("textColor", color)
	tr.shader.setBool("solid", true)
	tr.shader.setFloat("alpha", alpha)
	gl.BindVertexArray(tr.VAO)
	tr.drawQuad(x, y, w, h)
	gl.BindVertexArray(0)
}

func (tr *TextRenderer) drawQuad(x, y, w, h float32) {
	vertices := []float32{
		x, y + h, 0.0, 1.0,
		x + w, y, 1.0, 0.0,
		x, y, 0.0, 0.0,

		x, y + h, 0.0, 1.0,
		x + w, y + h, 1.0, 1.0,
		x + w, y, 1.0, 0.0,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.VBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*int(unsafe.Sizeof(vertices[0])), gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (tr *TextRenderer) delete() {
	for _, ch := range tr.characters {
		if ch.TextureID != 0 {
			gl.DeleteTextures(1, &ch.TextureID)
		}
	}
	gl.DeleteVertexArrays(1, &tr.VAO)
	gl.DeleteBuffers(1, &tr.VBO)
}
