package main

import (
	"fmt"
	"unsafe"

	"github.com/braheezy/glass-pavilion/internal/assets"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Mesh struct {
	vertices []assets.Vertex
	indices  []uint32
	textures []Texture
	VAO      uint32
	VBO      uint32
	EBO      uint32
}

func NewMesh(vertices []assets.Vertex, indices []uint32, textures []Texture) *Mesh {
	mesh := &Mesh{
		vertices: vertices,
		indices:  indices,
		textures: textures,
	}
	mesh.setupMesh()
	return mesh
}

func (mesh *Mesh) Draw(shader *Shader) {
	// Samplers are named by type and a 1-based counter, e.g. texture_diffuse1.
	counters := map[string]int{}
	for i, texture := range mesh.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		counters[texture.Type]++
		shader.setInt(fmt.Sprintf("%s%d", texture.Type, counters[texture.Type]), int32(i))
		gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	}

	gl.BindVertexArray(mesh.VAO)
	gl.DrawElements(gl.TRIANGLES, int32(len(mesh.indices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)

	// Set everything back to defaults
	gl.ActiveTexture(gl.TEXTURE0)
}

func (mesh *Mesh) setupMesh() {
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.GenBuffers(1, &mesh.VBO)
	gl.GenBuffers(1, &mesh.EBO)

	gl.BindVertexArray(mesh.VAO)

	vertexSize := int(unsafe.Sizeof(assets.Vertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.vertices)*vertexSize, unsafe.Pointer(&mesh.vertices[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.indices)*int(unsafe.Sizeof(uint32(0))), unsafe.Pointer(&mesh.indices[0]), gl.STATIC_DRAW)

	// Vertex Positions
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(0))
	// Vertex Normals
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(int(unsafe.Offsetof(assets.Vertex{}.Normal))))
	// Vertex Texture Coords
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(int(unsafe.Offsetof(assets.Vertex{}.TexCoords))))

	gl.BindVertexArray(0)
}

func (mesh *Mesh) delete() {
	gl.DeleteVertexArrays(1, &mesh.VAO)
	gl.DeleteBuffers(1, &mesh.VBO)
	gl.DeleteBuffers(1, &mesh.EBO)
}
