package geometry

import (
	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewSquare creates a unit square centered at the origin in the z=0
// plane, made of two triangles.
func NewSquare(mat *material.Material) *Geometry {
	g := NewGeometry()
	i0 := g.AddVertex(core.NewVec3(-0.5, -0.5, 0))
	i1 := g.AddVertex(core.NewVec3(0.5, -0.5, 0))
	i2 := g.AddVertex(core.NewVec3(0.5, 0.5, 0))
	i3 := g.AddVertex(core.NewVec3(-0.5, 0.5, 0))
	g.AddTriangle(i0, i1, i2, mat, nil)
	g.AddTriangle(i0, i2, i3, mat, nil)
	return g
}
