package scene

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/lights"
	"github.com/tlecomte/go-raycaster/pkg/loaders"
	"github.com/tlecomte/go-raycaster/pkg/material"
	"github.com/tlecomte/go-raycaster/pkg/renderer"
)

// NewModelScene loads a glTF asset, frames it with a ground plane and a
// disk surface light scaled to the model bounds, and aims the camera at
// the model.
func NewModelScene(visu renderer.Visualizer, path string) (*Scene, error) {
	s := NewScene(visu)

	model, err := loaders.LoadGLTF(path)
	if err != nil {
		return nil, err
	}
	for _, mesh := range model.Meshes {
		s.Add(mesh)
	}

	sb := s.BoundingBox()
	size := sb.Size()
	center := sb.Center()

	addGround(s, sb)

	// A disk light above the model, scaled to its extent
	radius := math.Max(size.X, size.Y) * 0.25
	if radius == 0 {
		radius = 1
	}
	value := math.Max(size.X, math.Max(size.Y, size.Z)) * 4
	emissive := material.NewEmissive(core.NewVec3(value, value, value))
	lightPos := core.NewVec3(center.X, center.Y, sb.Max.Z+size.Z)
	s.AddLightSource(lights.NewDiskLight(lightPos, core.IdentityQuaternion(), radius, 24, emissive, 64))

	distance := size.Length()
	if distance == 0 {
		distance = 10
	}
	position := center.Add(core.NewVec3(-distance, -distance, distance*0.5))
	s.SetCamera(renderer.NewCamera(position, center, 0.3, 1, 1))
	return s, nil
}

// addGround adds a large ground square under the scene content
func addGround(s *Scene, sb core.AABB) {
	if sb.IsEmpty() {
		return
	}
	mat := material.NewMaterial(
		core.Vec3{}, core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(4, 4, 4), 1000, core.Vec3{})

	size := sb.Size()
	scale := math.Max(size.X, size.Y) * 2
	if scale == 0 {
		scale = 1
	}

	square := geometry.NewSquare(mat)
	square.ScaleX(scale)
	square.ScaleY(scale)
	center := sb.Center()
	square.Translate(core.NewVec3(center.X, center.Y, sb.Min.Z))
	s.Add(square)
}
