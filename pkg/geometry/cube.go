package geometry

import (
	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewCube creates a unit cube centered at the origin
func NewCube(mat *material.Material) *Geometry {
	g := NewGeometry()

	var idx [8]int
	corner := 0
	for _, z := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			for _, x := range []float64{-0.5, 0.5} {
				idx[corner] = g.AddVertex(core.NewVec3(x, y, z))
				corner++
			}
		}
	}

	// Two triangles per face, outward winding
	faces := [6][4]int{
		{0, 2, 3, 1}, // bottom (z = -0.5)
		{4, 5, 7, 6}, // top    (z = +0.5)
		{0, 1, 5, 4}, // front  (y = -0.5)
		{2, 6, 7, 3}, // back   (y = +0.5)
		{0, 4, 6, 2}, // left   (x = -0.5)
		{1, 3, 7, 5}, // right  (x = +0.5)
	}
	for _, f := range faces {
		g.AddTriangle(idx[f[0]], idx[f[1]], idx[f[2]], mat, nil)
		g.AddTriangle(idx[f[0]], idx[f[2]], idx[f[3]], mat, nil)
	}
	return g
}
