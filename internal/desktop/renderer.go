package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"shooter/internal/game"
)

// maxVertices sizes the streaming buffer; larger scenes are truncated.
const maxVertices = 1 << 16

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	// Reusable vertex buffer to avoid per-frame heap allocations.
	buf []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	r := &Renderer{prog: prog}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(game.FloatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxVertices*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.vao = vao
	r.vbo = vbo

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// DrawSession clears the framebuffer and draws every live entity.
func (r *Renderer) DrawSession(s *game.GameSession, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := game.Palette.Background
	if s.State == game.StateLost {
		bg = game.Palette.Alert
		bg.R /= 4
	}
	cr, cg, cb := bg.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.buf = game.SceneVertices(s, r.buf)
	count := len(r.buf) / game.FloatsPerVertex
	if count == 0 {
		return
	}
	if count > maxVertices {
		count = maxVertices
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, count*game.FloatsPerVertex*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
}
