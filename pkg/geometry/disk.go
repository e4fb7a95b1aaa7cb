package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewDisk creates a disk of the given radius in the z=0 plane, centered
// at the origin, triangulated as a fan with nbDiv segments.
func NewDisk(radius float64, nbDiv int, mat *material.Material) *Geometry {
	g := NewGeometry()
	center := g.AddVertex(core.NewVec3(0, 0, 0))
	rim := make([]int, nbDiv)
	for i := 0; i < nbDiv; i++ {
		angle := 2 * math.Pi * float64(i) / float64(nbDiv)
		rim[i] = g.AddVertex(core.NewVec3(radius*math.Cos(angle), radius*math.Sin(angle), 0))
	}
	for i := 0; i < nbDiv; i++ {
		g.AddTriangle(center, rim[i], rim[(i+1)%nbDiv], mat, nil)
	}
	return g
}
