package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewCone creates a cone with its base (radius 1) in the z=0 plane and
// its apex at z=1, with nbDiv side segments.
func NewCone(nbDiv int, mat *material.Material) *Geometry {
	g := NewGeometry()
	apex := g.AddVertex(core.NewVec3(0, 0, 1))
	base := g.AddVertex(core.NewVec3(0, 0, 0))
	rim := make([]int, nbDiv)
	for i := 0; i < nbDiv; i++ {
		angle := 2 * math.Pi * float64(i) / float64(nbDiv)
		rim[i] = g.AddVertex(core.NewVec3(math.Cos(angle), math.Sin(angle), 0))
	}
	for i := 0; i < nbDiv; i++ {
		next := (i + 1) % nbDiv
		g.AddTriangle(apex, rim[i], rim[next], mat, nil)
		g.AddTriangle(base, rim[next], rim[i], mat, nil)
	}
	return g
}
