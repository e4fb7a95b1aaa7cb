package lights

import (
	"math/rand"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// RectangleLight is a rectangular surface light of the given width and
// height, rotated and placed at a position in the scene.
type RectangleLight struct {
	source
	rotation core.Quaternion
	width    float64
	height   float64
}

// NewRectangleLight creates a rectangle light. The rectangle spans
// [0,width]×[0,height] in light-local space before rotation and
// translation.
func NewRectangleLight(position core.Vec3, rotation core.Quaternion, width, height float64, mat *material.Material, sampleCount int) *RectangleLight {
	l := &RectangleLight{
		source:   newSource(position, sampleCount, mat),
		rotation: rotation,
		width:    width,
		height:   height,
	}

	g := l.geom
	i0 := g.AddVertex(core.NewVec3(0, 0, 0))
	i1 := g.AddVertex(core.NewVec3(width, 0, 0))
	i2 := g.AddVertex(core.NewVec3(width, height, 0))
	i3 := g.AddVertex(core.NewVec3(0, height, 0))
	g.AddTriangle(i0, i1, i2, mat, nil)
	g.AddTriangle(i0, i2, i3, mat, nil)
	g.Rotate(rotation)
	g.Translate(position)
	return l
}

// Generate samples a point on the rectangle
func (l *RectangleLight) Generate(random *rand.Rand) PointLight {
	u, v := l.nextSample(random)
	local := core.NewVec3(u*l.width, v*l.height, 0)
	position := l.rotation.Rotate(local).Add(l.position)
	return NewPointLight(position, l.color)
}
