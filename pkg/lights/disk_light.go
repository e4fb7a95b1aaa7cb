package lights

import (
	"math"
	"math/rand"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// DiskLight is a disk-shaped surface light
type DiskLight struct {
	source
	rotation core.Quaternion
	radius   float64
}

// NewDiskLight creates a disk light of the given radius, triangulated
// with nbDiv fan segments for its visible surface.
func NewDiskLight(position core.Vec3, rotation core.Quaternion, radius float64, nbDiv int, mat *material.Material, sampleCount int) *DiskLight {
	l := &DiskLight{
		source:   newSource(position, sampleCount, mat),
		rotation: rotation,
		radius:   radius,
	}
	disk := geometry.NewDisk(radius, nbDiv, mat)
	disk.Rotate(rotation)
	disk.Translate(position)
	l.geom.Merge(disk)
	return l
}

// Generate samples a point uniformly on the disk area: r = R·√v keeps
// the density uniform over the surface.
func (l *DiskLight) Generate(random *rand.Rand) PointLight {
	u, v := l.nextSample(random)
	phi := 2 * math.Pi * u
	r := l.radius * math.Sqrt(v)
	local := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), 0)
	position := l.rotation.Rotate(local).Add(l.position)
	return NewPointLight(position, l.color)
}
