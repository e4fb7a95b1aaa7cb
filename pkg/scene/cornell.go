package scene

import (
	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/lights"
	"github.com/tlecomte/go-raycaster/pkg/material"
	"github.com/tlecomte/go-raycaster/pkg/renderer"
)

func black() core.Vec3 { return core.Vec3{} }

// NewDiffuseCornellScene builds a cornell box with diffuse colored
// walls, two cubes, two point lights and a rectangle surface light.
func NewDiffuseCornellScene(visu renderer.Visualizer) *Scene {
	s := NewScene(visu)

	walls := material.NewMaterial(black(), core.NewVec3(1, 1, 1), black(), 1000, black())
	red := material.NewMaterial(black(), core.NewVec3(1, 0, 0), black(), 20, black())
	green := material.NewMaterial(black(), core.NewVec3(0, 1, 0), black(), 20, black())
	blue := material.NewMaterial(black(), core.NewVec3(0, 0, 1), black(), 20, black())

	box := geometry.NewCornellBox(walls, walls, walls, blue, red, green)
	box.ScaleX(10)
	box.ScaleY(10)
	box.ScaleZ(10)
	s.Add(box)

	cube := geometry.NewCube(red)
	cube.Translate(core.NewVec3(1.5, -1.5, 0))
	s.Add(cube)

	cube2 := geometry.NewCube(red)
	cube2.Translate(core.NewVec3(2, 1, -4))
	s.Add(cube2)

	s.AddPointLight(lights.NewPointLight(core.NewVec3(0, 0, 2), core.NewVec3(0.5, 0.5, 0.5)))
	s.AddPointLight(lights.NewPointLight(core.NewVec3(4, 0, 0), core.NewVec3(0.5, 0.5, 0.5)))

	emissive := material.NewEmissive(core.NewVec3(1, 1, 1))
	s.AddLightSource(lights.NewRectangleLight(
		core.NewVec3(-1, -0.5, 4.9), core.IdentityQuaternion(), 2, 1, emissive, 25))

	s.SetCamera(renderer.NewCamera(core.NewVec3(-4, 0, 0), core.NewVec3(0, 0, 0), 0.3, 1, 1))
	return s
}

// NewSpecularCornellScene builds a cornell box with mirror-like walls
// containing two diffuse cubes, lit by a spherical surface light.
func NewSpecularCornellScene(visu renderer.Visualizer) *Scene {
	s := NewScene(visu)

	walls := material.NewMaterial(black(), black(), core.NewVec3(0.7, 0.7, 0.7), 100, black())
	cubeMat := material.NewMaterial(black(), core.NewVec3(1, 0, 0), black(), 20, black())

	box := geometry.NewCornellBox(walls, walls, walls, walls, walls, walls)
	box.ScaleX(10)
	box.ScaleY(10)
	box.ScaleZ(10)
	s.Add(box)

	cube := geometry.NewCube(cubeMat)
	cube.Translate(core.NewVec3(1.5, -1.5, 0))
	s.Add(cube)

	cube2 := geometry.NewCube(cubeMat)
	cube2.Translate(core.NewVec3(2, 1, -4))
	s.Add(cube2)

	emissive := material.NewEmissive(core.NewVec3(1, 1, 1))
	s.AddLightSource(lights.NewSphereLight(core.NewVec3(1, 3, 4.5), 1, 24, emissive, 100))

	s.SetCamera(renderer.NewCamera(core.NewVec3(-4, 0, 0), core.NewVec3(0, 0, 0), 0.3, 1, 1))
	return s
}

// NewMixedCornellScene builds a cornell box with mixed diffuse and
// specular walls containing two emissive cubes.
func NewMixedCornellScene(visu renderer.Visualizer) *Scene {
	s := NewScene(visu)

	specular := material.NewMaterial(black(), black(), core.NewVec3(0.7, 0.7, 0.7), 100, black())
	diffuse := material.NewMaterial(black(), core.NewVec3(1, 1, 1), black(), 1000, black())
	redGlow := material.NewMaterial(black(), black(), black(), 20, core.NewVec3(10, 0, 0))
	greenGlow := material.NewMaterial(black(), black(), black(), 20, core.NewVec3(0, 10, 0))

	box := geometry.NewCornellBox(diffuse, diffuse, specular, specular, specular, specular)
	box.ScaleX(10)
	box.ScaleY(10)
	box.ScaleZ(10)
	s.Add(box)

	cube := geometry.NewCube(greenGlow)
	cube.Translate(core.NewVec3(1.5, -1.5, 0))
	s.Add(cube)

	cube2 := geometry.NewCube(redGlow)
	cube2.Translate(core.NewVec3(2, 1, -4))
	s.Add(cube2)

	s.SetCamera(renderer.NewCamera(core.NewVec3(-4, 0, 0), core.NewVec3(0, 0, 0), 0.3, 1, 1))
	return s
}
