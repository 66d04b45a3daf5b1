package renderer

import (
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/projective/pkg/surface"
)

// surfaceMesh is a generated buffer on the GPU, drawn without indices.
type surfaceMesh struct {
	vao          uint32
	vbo          uint32
	count        int32
	textureScale float32
}

func (m *surfaceMesh) upload(buf *surface.VertexBuffer) {
	m.release()
	if len(buf.Data) == 0 {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, buf.SizeBytes(), unsafe.Pointer(&buf.Data[0]), gl.STATIC_DRAW)

	// Position (location 0), normal (1), UV (2), wherever the layout puts them.
	for loc, attr := range buf.Attributes() {
		gl.VertexAttribPointerWithOffset(uint32(loc), int32(attr.Size), gl.FLOAT, false, int32(attr.Stride), uintptr(attr.Offset))
		gl.EnableVertexAttribArray(uint32(loc))
	}

	gl.BindVertexArray(0)

	m.count = int32(buf.VertexCount())
	m.textureScale = uvScale(buf)
}

func (m *surfaceMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *surfaceMesh) release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	*m = surfaceMesh{}
}

// uvScale maps the buffer's UV extent onto one repeat of the checker, so
// unit and angular domains look alike.
func uvScale(buf *surface.VertexBuffer) float32 {
	var extent float32
	for i := range buf.VertexCount() {
		uv := buf.UV(i)
		extent = max(extent, float32(gomath.Abs(float64(uv.X))), float32(gomath.Abs(float64(uv.Y))))
	}
	if extent <= 1 {
		return 1
	}
	return 1 / extent
}

// lineMesh holds xyz line-list vertices.
type lineMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func (m *lineMesh) upload(vertices []float32) {
	m.release()
	if len(vertices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	m.count = int32(len(vertices) / 3)
}

func (m *lineMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.LINES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *lineMesh) release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	*m = lineMesh{}
}
