package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// NewCylinder creates a closed cylinder of the given radius spanning
// z in [0, height], with nbDiv side segments.
func NewCylinder(nbDiv int, height, radius float64, mat *material.Material) *Geometry {
	g := NewGeometry()
	bottomCenter := g.AddVertex(core.NewVec3(0, 0, 0))
	topCenter := g.AddVertex(core.NewVec3(0, 0, height))
	bottom := make([]int, nbDiv)
	top := make([]int, nbDiv)
	for i := 0; i < nbDiv; i++ {
		angle := 2 * math.Pi * float64(i) / float64(nbDiv)
		x := radius * math.Cos(angle)
		y := radius * math.Sin(angle)
		bottom[i] = g.AddVertex(core.NewVec3(x, y, 0))
		top[i] = g.AddVertex(core.NewVec3(x, y, height))
	}
	for i := 0; i < nbDiv; i++ {
		next := (i + 1) % nbDiv
		// Side quad
		g.AddTriangle(bottom[i], bottom[next], top[next], mat, nil)
		g.AddTriangle(bottom[i], top[next], top[i], mat, nil)
		// Caps
		g.AddTriangle(bottomCenter, bottom[next], bottom[i], mat, nil)
		g.AddTriangle(topCenter, top[i], top[next], mat, nil)
	}
	return g
}
