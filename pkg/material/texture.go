package material

import (
	"image"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// Texture contains a decoded bitmap as a Vec3 color array
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewTexture creates a texture from raw pixel data in row-major order
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{Width: width, Height: height, Pixels: pixels}
}

// NewTextureFromImage converts a decoded image into a texture
func NewTextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewTexture(width, height, pixels)
}

// Sample returns the texel at (u, v) with clamp-to-edge addressing
func (t *Texture) Sample(u, v float64) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.NewVec3(1, 1, 1)
	}
	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int(v*float64(t.Height)), t.Height)
	return t.Pixels[y*t.Width+x]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
