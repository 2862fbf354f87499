package core

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Vertex3D is one mesh vertex: a position followed by a texture coordinate.
// The field order is the GPU attribute layout, so the offsets below are part
// of the contract between UploadMesh and the vertex shader.
type Vertex3D struct {
	X, Y, Z float32
	U, V    float32
}

const (
	vertexStride   = int32(unsafe.Sizeof(Vertex3D{}))
	texCoordOffset = int(unsafe.Offsetof(Vertex3D{}.U))
)

// Mesh is an opaque handle to GPU-resident geometry: a vertex array with its
// index count, plus the texture drawn with it. Texture handles are plain
// identifiers, so one texture may back several meshes.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	Texture    Texture
}

// UploadMesh copies the vertex and index data into freshly allocated GPU
// buffers and records the attribute layout: 3 floats of position at offset
// 0, 2 floats of texture coordinate right after them. The data is uploaded
// once as STATIC_DRAW and never updated. The caller must hold a current GL
// context; indices must be valid offsets into vertices.
func UploadMesh(vertices []Vertex3D, indices []uint32) Mesh {
	m := Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	defer gl.BindVertexArray(0)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	// Position attribute (layout location 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, gl.Ptr(nil))
	gl.EnableVertexAttribArray(0)
	// Texture coordinate attribute (layout location 1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(texCoordOffset))
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	return m
}

// TriangleCount reports the number of faces the mesh draws.
func (m Mesh) TriangleCount() int {
	return int(m.indexCount) / 3
}

// Draw binds the mesh's texture and vertex array, issues the indexed
// triangle draw call with whatever shader program is active, and unbinds
// both again.
func (m Mesh) Draw() {
	gl.BindTexture(gl.TEXTURE_2D, m.Texture.id)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Delete releases the mesh's GPU buffers.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
