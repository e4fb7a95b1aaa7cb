package lights

import (
	"math"
	"math/rand"

	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// SurfaceLight turns an arbitrary mesh into a surface light. Sample
// points are distributed uniformly over the surface: a triangle is
// picked with probability proportional to its area, then a point is
// sampled inside it barycentrically.
type SurfaceLight struct {
	source
	cdf       []float64
	totalArea float64
}

// NewSurfaceLight creates a surface light from a copy of the given mesh
func NewSurfaceLight(mesh *geometry.Geometry, mat *material.Material, sampleCount int) *SurfaceLight {
	l := &SurfaceLight{
		source: newSource(mesh.BoundingBox().Center(), sampleCount, mat),
	}
	l.geom.Merge(mesh)

	triangles := l.geom.Triangles()
	l.cdf = make([]float64, len(triangles))
	for i, t := range triangles {
		e1 := t.Vertex(1).Subtract(t.Vertex(0))
		e2 := t.Vertex(2).Subtract(t.Vertex(0))
		l.totalArea += e1.Cross(e2).Length() / 2
		l.cdf[i] = l.totalArea
	}
	return l
}

// Generate picks a triangle by the area CDF and samples a point inside
// it. The first stratified coordinate drives the triangle choice and is
// rescaled within the selected CDF segment for the barycentric sample.
func (l *SurfaceLight) Generate(random *rand.Rand) PointLight {
	u, v := l.nextSample(random)

	triangles := l.geom.Triangles()
	if len(triangles) == 0 || l.totalArea == 0 {
		return NewPointLight(l.position, l.color)
	}

	target := u * l.totalArea
	idx := 0
	for idx < len(l.cdf)-1 && l.cdf[idx] < target {
		idx++
	}
	low := 0.0
	if idx > 0 {
		low = l.cdf[idx-1]
	}
	ur := (target - low) / (l.cdf[idx] - low)

	t := triangles[idx]
	su := math.Sqrt(ur)
	b0 := 1 - su
	b1 := su * (1 - v)
	b2 := su * v
	position := t.Vertex(0).Multiply(b0).
		Add(t.Vertex(1).Multiply(b1)).
		Add(t.Vertex(2).Multiply(b2))
	return NewPointLight(position, l.color)
}
