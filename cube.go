package main

import (
	"unsafe"

	"github.com/braheezy/glass-pavilion/internal/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// cubeMesh is a cube uploaded once and drawn many times with different
// model matrices.
type cubeMesh struct {
	VAO, VBO uint32
}

func newCubeMesh(vertices []float32) *cubeMesh {
	c := &cubeMesh{}
	gl.GenVertexArrays(1, &c.VAO)
	gl.GenBuffers(1, &c.VBO)

	gl.BindVertexArray(c.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(vertices[0])), gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(scene.CubeStride * unsafe.Sizeof(float32(0)))
	// position
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	// normal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	// texture coords
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return c
}

// draw renders one box with texture as both its diffuse and specular map.
func (c *cubeMesh) draw(shader *Shader, texture uint32, box scene.Box) {
	shader.use()

	// diffuse map
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// specular map
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	shader.setMat4("model", box.Model())

	gl.BindVertexArray(c.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, scene.CubeVertexCount)
	gl.BindVertexArray(0)
}

func (c *cubeMesh) delete() {
	gl.DeleteVertexArrays(1, &c.VAO)
	gl.DeleteBuffers(1, &c.VBO)
}

// unitTiling leaves every face's texture unrepeated.
var unitTiling = mgl32.Vec2{1, 1}
