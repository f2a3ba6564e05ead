package main

import (
	"path/filepath"

	"github.com/braheezy/glass-pavilion/internal/assets"
	"github.com/braheezy/glass-pavilion/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

type Texture struct {
	ID   uint32
	Type string
	Path string
}

// loadTexture uploads an image file as a mipmapped, repeating 2D texture.
// Files that cannot be read are replaced by a checkerboard so the scene
// still renders.
func loadTexture(path string) uint32 {
	img, err := assets.LoadImage(path)
	if err != nil {
		logger.Log.Warn("texture missing, using checkerboard", zap.String("path", path), zap.Error(err))
		img = assets.Checkerboard(64, 8)
	}
	return uploadTexture(assets.PixelsFromImage(img, true))
}

func loadModelTexture(ref assets.TextureRef, directory string) Texture {
	return Texture{
		ID:   loadTexture(filepath.Join(directory, ref.Path)),
		Type: ref.Type,
		Path: ref.Path,
	}
}

func uploadTexture(px assets.Pixels) uint32 {
	var format int32 = gl.RGB
	wrap := int32(gl.REPEAT)
	if px.Channels == 4 {
		format = gl.RGBA
		// transparent borders would bleed in from the opposite edge
		wrap = gl.CLAMP_TO_EDGE
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	// RGB rows are not always 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, format, int32(px.Width), int32(px.Height), 0, uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(px.Data))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id
}
