package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed font_alt.png
var fontPNG []byte

// Renderer owns all GL objects: one textured-quad program for sprites,
// one point-sprite program shared by particles and stars, a ring
// variant of it for the collision debug overlay, and the text pipeline.
// Everything draws in physical pixel coordinates; callers scale through
// the Viewport first.
type Renderer struct {
	spriteProg uint32
	pointProg  uint32
	ringProg   uint32
	textProg   uint32

	quadVAO, quadVBO   uint32
	pointVAO, pointVBO uint32
	textVAO, textVBO   uint32

	fontTex  uint32
	textures [spriteCount]uint32

	// uniform locations for the sprite program
	uCenter, uSize, uRotation, uSpriteRes int32
	uPointRes, uRingRes, uTextRes         int32

	pointBuf []float32
	textBuf  []float32

	vp Viewport
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	var err error
	if r.spriteProg, err = linkProgram(spriteVertSrc, spriteFragSrc); err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	if r.pointProg, err = linkProgram(pointVertSrc, pointFragSrc); err != nil {
		return nil, fmt.Errorf("point program: %w", err)
	}
	if r.ringProg, err = linkProgram(pointVertSrc, ringFragSrc); err != nil {
		return nil, fmt.Errorf("ring program: %w", err)
	}
	if r.textProg, err = linkProgram(textVertSrc, textFragSrc); err != nil {
		return nil, fmt.Errorf("text program: %w", err)
	}

	r.uCenter = gl.GetUniformLocation(r.spriteProg, gl.Str("uCenter\x00"))
	r.uSize = gl.GetUniformLocation(r.spriteProg, gl.Str("uSize\x00"))
	r.uRotation = gl.GetUniformLocation(r.spriteProg, gl.Str("uRotation\x00"))
	r.uSpriteRes = gl.GetUniformLocation(r.spriteProg, gl.Str("uResolution\x00"))
	r.uPointRes = gl.GetUniformLocation(r.pointProg, gl.Str("uResolution\x00"))
	r.uRingRes = gl.GetUniformLocation(r.ringProg, gl.Str("uResolution\x00"))
	r.uTextRes = gl.GetUniformLocation(r.textProg, gl.Str("uResolution\x00"))

	// Unit quad, two triangles, positions double as UVs.
	quad := []float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	// Streamed point sprites: [x, y, size, r, g, b, a, rotation].
	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, 8*4, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, 8*4, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, 8*4, glOffset(7*4))

	// Streamed text quads: [x, y, u, v, r, g, b, a].
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 8*4, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, 8*4, glOffset(4*4))

	gl.BindVertexArray(0)

	if err := r.initFont(); err != nil {
		return nil, err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.spriteProg)
	gl.DeleteProgram(r.pointProg)
	gl.DeleteProgram(r.ringProg)
	gl.DeleteProgram(r.textProg)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteVertexArrays(1, &r.pointVAO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteBuffers(1, &r.pointVBO)
	gl.DeleteBuffers(1, &r.textVBO)
	gl.DeleteTextures(1, &r.fontTex)
	for i := range r.textures {
		gl.DeleteTextures(1, &r.textures[i])
	}
}

// BeginFrame clears the frame and latches the viewport for all draws
// until the next BeginFrame.
func (r *Renderer) BeginFrame(vp Viewport) {
	r.vp = vp
	gl.Viewport(0, 0, int32(vp.W), int32(vp.H))
	gl.ClearColor(0.0, 0.05, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawSprite draws one entity's textured quad, scaled by the viewport
// and rotated about its centre.
func (r *Renderer) DrawSprite(e *Entity) {
	cx, cy := r.vp.Point(e.X, e.Y)
	w, h := r.vp.Size(e.W, e.H)

	gl.UseProgram(r.spriteProg)
	gl.Uniform2f(r.uCenter, float32(cx), float32(cy))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, float32(e.Rotation))
	gl.Uniform2f(r.uSpriteRes, float32(r.vp.W), float32(r.vp.H))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textures[e.Kind.Stats().Sprite])

	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawPoints streams and draws a batch of point sprites in the
// [x, y, size, r, g, b, a, rotation] layout.
func (r *Renderer) DrawPoints(buf []float32) {
	r.drawPointBatch(r.pointProg, r.uPointRes, buf)
}

// DrawRings draws the same point layout as hollow circles. Used by the
// collision debug overlay.
func (r *Renderer) DrawRings(buf []float32) {
	r.drawPointBatch(r.ringProg, r.uRingRes, buf)
}

func (r *Renderer) drawPointBatch(prog uint32, uRes int32, buf []float32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(prog)
	gl.Uniform2f(uRes, float32(r.vp.W), float32(r.vp.H))
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(buf)/8))
}

// RingData appends one debug circle centred on the entity, sized to its
// physical hit radius and coloured per kind.
func RingData(buf []float32, e *Entity, vp Viewport) []float32 {
	sx, sy := vp.Point(e.X, e.Y)
	d := 2 * e.Radius() * vp.Min()
	c := e.Kind.Stats().Circle
	return append(buf,
		float32(sx), float32(sy), float32(d),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255,
		1, 0)
}

func (r *Renderer) initFont() error {
	img, err := png.Decode(bytes.NewReader(fontPNG))
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	r.fontTex = uploadTexture(img)
	return nil
}

// uploadTexture converts any decoded image to NRGBA and uploads it.
func uploadTexture(img image.Image) uint32 {
	b := img.Bounds()
	nrgba := image.NewNRGBA(b)
	draw.Draw(nrgba, b, img, b.Min, draw.Src)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))
	return tex
}

// DrawChar queues one glyph quad at x, y (top-left, physical pixels).
func (r *Renderer) DrawChar(ch byte, x, y, scale float32, col RGB, alpha float32) {
	if ch > 127 {
		ch = '?'
	}
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255

	cw := float32(FontCellW) * scale
	chh := float32(FontCellH) * scale

	u0 := float32(int(ch)%FontCols) / FontCols
	v0 := float32(int(ch)/FontCols) / FontRows
	u1 := u0 + 1.0/FontCols
	v1 := v0 + 1.0/FontRows

	r.textBuf = append(r.textBuf,
		x, y, u0, v0, cr, cg, cb, alpha,
		x+cw, y, u1, v0, cr, cg, cb, alpha,
		x+cw, y+chh, u1, v1, cr, cg, cb, alpha,

		x, y, u0, v0, cr, cg, cb, alpha,
		x+cw, y+chh, u1, v1, cr, cg, cb, alpha,
		x, y+chh, u0, v1, cr, cg, cb, alpha,
	)
}

// DrawString queues a string. Newlines advance to the next line at the
// starting x.
func (r *Renderer) DrawString(s string, x, y, scale float32, col RGB, alpha float32) {
	cx, cy := x, y
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			cx = x
			cy += float32(FontCellH) * scale
			continue
		}
		r.DrawChar(s[i], cx, cy, scale, col, alpha)
		cx += float32(FontCellW) * scale
	}
}

// TextWidth returns the physical pixel width of the longest line of s.
func TextWidth(s string, scale float32) float32 {
	var w, line float32
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line = 0
			continue
		}
		line += float32(FontCellW) * scale
		if line > w {
			w = line
		}
	}
	return w
}

// FlushText draws all queued glyph quads and resets the queue. Called
// once per frame, after all game geometry.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.uTextRes, float32(r.vp.W), float32(r.vp.H))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))
	r.textBuf = r.textBuf[:0]
}

func glOffset(n int) unsafe.Pointer {
	return gl.PtrOffset(n)
}
