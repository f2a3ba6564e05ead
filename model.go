package main

import (
	"fmt"

	"github.com/braheezy/glass-pavilion/internal/assets"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Model struct {
	texturesLoaded map[string]Texture // to avoid loading the same texture more than once
	meshes         []*Mesh
	directory      string
}

// LoadModel loads <path>/<base>.obj and its material textures.
func LoadModel(path string) (*Model, error) {
	groups, err := assets.LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("model %s has no faces", path)
	}

	m := &Model{
		texturesLoaded: make(map[string]Texture),
		directory:      path,
	}
	for _, g := range groups {
		m.meshes = append(m.meshes, NewMesh(g.Vertices, g.Indices, m.loadTextures(g.Textures)))
	}
	return m, nil
}

func (m *Model) loadTextures(refs []assets.TextureRef) []Texture {
	textures := make([]Texture, 0, len(refs))
	for _, ref := range refs {
		texture, loaded := m.texturesLoaded[ref.Path]
		if !loaded {
			texture = loadModelTexture(ref, m.directory)
			m.texturesLoaded[ref.Path] = texture
		}
		texture.Type = ref.Type
		textures = append(textures, texture)
	}
	return textures
}

// Draw renders the model using the provided shader.
func (m *Model) Draw(shader *Shader) {
	for _, mesh := range m.meshes {
		mesh.Draw(shader)
	}
}

func (m *Model) delete() {
	for _, mesh := range m.meshes {
		mesh.delete()
	}
	for _, t := range m.texturesLoaded {
		gl.DeleteTextures(1, &t.ID)
	}
}
