package material

import (
	"github.com/tlecomte/go-raycaster/pkg/core"
)

// Material bundles the Phong shading coefficients of a surface.
// A material with a non-zero emissive component acts as a light.
type Material struct {
	Ambient     core.Vec3
	Diffuse     core.Vec3
	Specular    core.Vec3
	Shininess   float64
	Emissive    core.Vec3
	TextureFile string
	texture     *Texture
}

// NewMaterial creates a new material
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64, emissive core.Vec3) *Material {
	return &Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
		Emissive:  emissive,
	}
}

// NewEmissive creates a pure light-emitting material
func NewEmissive(emissive core.Vec3) *Material {
	return &Material{Emissive: emissive}
}

// IsEmissive reports whether this material emits light
func (m *Material) IsEmissive() bool {
	return !m.Emissive.IsZero()
}

// SetTexture binds a sampled bitmap to the material
func (m *Material) SetTexture(t *Texture) {
	m.texture = t
}

// Texture returns the bound bitmap, nil if the material is untextured
func (m *Material) Texture() *Texture {
	return m.texture
}

// SampleTexture samples the bound bitmap at the given texture coordinates.
// Untextured materials sample white.
func (m *Material) SampleTexture(u, v float64) core.Vec3 {
	if m.texture == nil {
		return core.NewVec3(1, 1, 1)
	}
	return m.texture.Sample(u, v)
}
