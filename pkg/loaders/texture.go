package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "github.com/ftrvxmtrx/tga" // TGA decoder
	_ "golang.org/x/image/bmp"   // BMP decoder
	_ "golang.org/x/image/tiff"  // TIFF decoder

	"github.com/tlecomte/go-raycaster/pkg/material"
)

// LoadTexture decodes an image file into a material texture. The format
// is auto-detected from the file header; PNG, JPEG, BMP, TIFF and TGA
// are supported. Callers treat a failed load as "untextured" and the
// material samples white.
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", filename, err)
	}

	return material.NewTextureFromImage(img), nil
}
