package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

// Vertex matches the attribute layout shared by every shader in the scene:
// location 0 position, 1 normal, 2 texture coordinates.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// TextureRef names an image file relative to the model directory and the
// sampler it feeds.
type TextureRef struct {
	Path string
	Type string
}

const (
	TextureDiffuse  = "texture_diffuse"
	TextureSpecular = "texture_specular"
	TextureNormal   = "texture_normal"
	TextureHeight   = "texture_height"
)

// Group is one mesh of a model: a run of vertices and the textures of its
// material.
type Group struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Textures []TextureRef
}

// LoadOBJ reads <dir>/<base>.obj and, when present, <dir>/<base>.mtl where
// base is the directory's own name.
func LoadOBJ(dir string) ([]Group, error) {
	base := filepath.Base(dir)
	objPath := filepath.Join(dir, base+".obj")
	mtlPath := filepath.Join(dir, base+".mtl")

	obj, err := gwob.NewObjFromFile(objPath, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("load obj %s: %w", objPath, err)
	}

	var lib gwob.MaterialLib
	if _, err := os.Stat(mtlPath); err == nil {
		lib, err = gwob.ReadMaterialLibFromFile(mtlPath, &gwob.ObjParserOptions{})
		if err != nil {
			return nil, fmt.Errorf("load mtl %s: %w", mtlPath, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("stat mtl %s: %w", mtlPath, err)
	}

	groups := make([]Group, 0, len(obj.Groups))
	for _, g := range obj.Groups {
		if g.IndexCount == 0 {
			continue
		}
		groups = append(groups, buildGroup(obj, g, lib))
	}
	return groups, nil
}

func buildGroup(obj *gwob.Obj, g *gwob.Group, lib gwob.MaterialLib) Group {
	out := Group{Name: g.Name}
	stride := obj.StrideSize / 4

	for i := g.IndexBegin; i < g.IndexBegin+g.IndexCount; i++ {
		base := obj.Indices[i] * stride

		var v Vertex
		if p := base + obj.StrideOffsetPosition/4; p+2 < len(obj.Coord) {
			v.Position = mgl32.Vec3{obj.Coord[p], obj.Coord[p+1], obj.Coord[p+2]}
		}
		if t := base + obj.StrideOffsetTexture/4; obj.TextCoordFound && t+1 < len(obj.Coord) {
			v.TexCoords = mgl32.Vec2{obj.Coord[t], obj.Coord[t+1]}
		}
		if n := base + obj.StrideOffsetNormal/4; obj.NormCoordFound && n+2 < len(obj.Coord) {
			v.Normal = mgl32.Vec3{obj.Coord[n], obj.Coord[n+1], obj.Coord[n+2]}
		}

		out.Vertices = append(out.Vertices, v)
		out.Indices = append(out.Indices, uint32(len(out.Vertices)-1))
	}

	if m, ok := lib.Lib[g.Usemtl]; ok {
		out.Textures = materialTextures(m)
	}
	return out
}

func materialTextures(m *gwob.Material) []TextureRef {
	var refs []TextureRef
	for _, r := range []TextureRef{
		{m.MapKd, TextureDiffuse},
		{m.MapKs, TextureSpecular},
		{m.Bump, TextureNormal},
		{m.MapD, TextureHeight},
	} {
		if r.Path != "" {
			refs = append(refs, r)
		}
	}
	return refs
}
