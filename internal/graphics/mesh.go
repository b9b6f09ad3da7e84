package graphics

import (
	"deskscene/internal/meshes"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an uploaded vertex array
type Mesh struct {
	VAO         uint32
	VBO         uint32
	VertexCount int32
}

// NewMesh uploads interleaved position/normal/uv data to a static buffer.
func NewMesh(data []float32) (*Mesh, error) {
	n, err := meshes.VertexCount(data)
	if err != nil {
		return nil, err
	}

	m := &Mesh{VertexCount: int32(n)}
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, meshes.FloatsPerPosition, gl.FLOAT, false, meshes.Stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, meshes.FloatsPerNormal, gl.FLOAT, false, meshes.Stride, gl.PtrOffset(meshes.NormalOffset))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, meshes.FloatsPerUV, gl.FLOAT, false, meshes.Stride, gl.PtrOffset(meshes.UVOffset))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

// Draw binds the vertex array and draws its triangles
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.VertexCount)
}

// Delete frees the buffer and vertex array
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteVertexArrays(1, &m.VAO)
	m.VAO, m.VBO = 0, 0
}
