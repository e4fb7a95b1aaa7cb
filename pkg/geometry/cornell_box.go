package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewCornellBox creates a unit box centered at the origin made of six
// walls, each with its own material: ceiling (z=+0.5), floor (z=-0.5),
// and the four side walls. The walls are not consistently oriented: the
// floor, back and left walls have inward face normals, the ceiling,
// front and right walls outward ones.
func NewCornellBox(up, down, front, back, left, right *material.Material) *Geometry {
	g := NewGeometry()

	addWall := func(mat *material.Material, rotation core.Quaternion, offset core.Vec3) {
		wall := NewSquare(mat)
		wall.Rotate(rotation)
		wall.Translate(offset)
		g.Merge(wall)
	}

	identity := core.IdentityQuaternion()
	addWall(down, identity, core.NewVec3(0, 0, -0.5))
	addWall(up, identity, core.NewVec3(0, 0, 0.5))
	addWall(front, core.NewQuaternion(core.NewVec3(1, 0, 0), math.Pi/2), core.NewVec3(0, -0.5, 0))
	addWall(back, core.NewQuaternion(core.NewVec3(1, 0, 0), math.Pi/2), core.NewVec3(0, 0.5, 0))
	addWall(left, core.NewQuaternion(core.NewVec3(0, 1, 0), math.Pi/2), core.NewVec3(-0.5, 0, 0))
	addWall(right, core.NewQuaternion(core.NewVec3(0, 1, 0), math.Pi/2), core.NewVec3(0.5, 0, 0))
	return g
}
