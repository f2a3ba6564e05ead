// Package assets turns files on disk into CPU-side data ready for upload.
package assets

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Pixels is tightly packed 8-bit image data, bottom row first when flipped.
type Pixels struct {
	Data          []byte
	Width, Height int
	// Channels is 3 for RGB and 4 for RGBA.
	Channels int
}

// LoadImage decodes a jpg or png file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// PixelsFromImage packs img as RGBA when any pixel is not opaque and as RGB
// otherwise. flip puts the last image row first, the layout OpenGL expects
// for texture coordinates that grow upwards.
func PixelsFromImage(img image.Image, flip bool) Pixels {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	channels := 3
	if hasAlpha(img) {
		channels = 4
	}

	data := make([]byte, width*height*channels)
	index := 0
	for row := 0; row < height; row++ {
		y := bounds.Min.Y + row
		if flip {
			y = bounds.Max.Y - 1 - row
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data[index] = c.R
			data[index+1] = c.G
			data[index+2] = c.B
			if channels == 4 {
				data[index+3] = c.A
			}
			index += channels
		}
	}

	return Pixels{Data: data, Width: width, Height: height, Channels: channels}
}

func hasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.YCbCr, *image.CMYK:
		return false
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xFFFF {
				return true
			}
		}
	}
	return false
}

// Checkerboard draws a size x size image of cells x cells alternating
// squares. It stands in for textures that fail to load.
func Checkerboard(size, cells int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	dark := color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}
