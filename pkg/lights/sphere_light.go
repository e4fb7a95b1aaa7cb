package lights

import (
	"math"
	"math/rand"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// SphereLight is a spherical surface light
type SphereLight struct {
	source
	radius float64
}

// NewSphereLight creates a sphere light of the given radius centered at
// the position, with nbDiv subdivisions for its visible surface.
func NewSphereLight(position core.Vec3, radius float64, nbDiv int, mat *material.Material, sampleCount int) *SphereLight {
	l := &SphereLight{
		source: newSource(position, sampleCount, mat),
		radius: radius,
	}
	sphere := geometry.NewSphere(radius, nbDiv, mat)
	sphere.Translate(position)
	l.geom.Merge(sphere)
	return l
}

// Generate samples a point uniformly on the sphere surface
func (l *SphereLight) Generate(random *rand.Rand) PointLight {
	u, v := l.nextSample(random)
	z := 1 - 2*v
	phi := 2 * math.Pi * u
	r := math.Sqrt(math.Max(0, 1-z*z))
	position := l.position.Add(core.NewVec3(
		l.radius*r*math.Cos(phi),
		l.radius*r*math.Sin(phi),
		l.radius*z,
	))
	return NewPointLight(position, l.color)
}
