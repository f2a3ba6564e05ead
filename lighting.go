package main

import (
	"github.com/braheezy/glass-pavilion/internal/scene"
	"github.com/go-gl/mathgl/mgl32"
)

func setPointLight(shader *Shader, name string, l scene.PointLight) {
	shader.setVec3(name+".position", l.Position)
	shader.setVec3(name+".ambient", l.Ambient)
	shader.setVec3(name+".diffuse", l.Diffuse)
	shader.setVec3(name+".specular", l.Specular)
	shader.setFloat(name+".constant", l.Constant)
	shader.setFloat(name+".linear", l.Linear)
	shader.setFloat(name+".quadratic", l.Quadratic)
}

func setSpotLight(shader *Shader, name string, l scene.SpotLight) {
	setPointLight(shader, name, l.PointLight)
	inner, outer := l.Cosines()
	shader.setVec3(name+".direction", l.Direction)
	shader.setFloat(name+".cutOff", inner)
	shader.setFloat(name+".outerCutOff", outer)
}

// frameUniforms is everything that changes once per frame rather than per
// draw.
type frameUniforms struct {
	projection mgl32.Mat4
	view       mgl32.Mat4
	viewPos    mgl32.Vec3
	lighting   scene.Lighting
}

// apply uploads the frame's uniforms. ambient replaces the point light's
// ambient term when non-nil.
func (f frameUniforms) apply(shader *Shader, ambient *mgl32.Vec3) {
	shader.use()
	point := f.lighting.Point
	if ambient != nil {
		point.Ambient = *ambient
	}
	setPointLight(shader, "pointLight", point)
	setSpotLight(shader, "spotLight", f.lighting.Spot)
	shader.setBool("spotEnabled", f.lighting.SpotEnabled)
	shader.setBool("blinn", f.lighting.Blinn)
	shader.setFloat("material.shininess", 32)
	shader.setVec3("viewPos", f.viewPos)
	shader.setMat4("projection", f.projection)
	shader.setMat4("view", f.view)
}
