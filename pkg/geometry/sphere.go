package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewSphere creates a latitude/longitude sphere of the given radius
// centered at the origin with nbDiv subdivisions per axis.
func NewSphere(radius float64, nbDiv int, mat *material.Material) *Geometry {
	if nbDiv < 3 {
		nbDiv = 3
	}
	g := NewGeometry()

	// Vertex grid: (nbDiv+1) rings of (nbDiv+1) vertices; poles repeat
	rings := make([][]int, nbDiv+1)
	for i := 0; i <= nbDiv; i++ {
		theta := math.Pi * float64(i) / float64(nbDiv)
		rings[i] = make([]int, nbDiv+1)
		for j := 0; j <= nbDiv; j++ {
			phi := 2 * math.Pi * float64(j) / float64(nbDiv)
			rings[i][j] = g.AddVertex(core.NewVec3(
				radius*math.Sin(theta)*math.Cos(phi),
				radius*math.Sin(theta)*math.Sin(phi),
				radius*math.Cos(theta),
			))
		}
	}

	for i := 0; i < nbDiv; i++ {
		for j := 0; j < nbDiv; j++ {
			a := rings[i][j]
			b := rings[i+1][j]
			c := rings[i+1][j+1]
			d := rings[i][j+1]
			if i > 0 {
				g.AddTriangle(a, b, d, mat, nil)
			}
			if i < nbDiv-1 {
				g.AddTriangle(b, c, d, mat, nil)
			}
		}
	}
	return g
}
