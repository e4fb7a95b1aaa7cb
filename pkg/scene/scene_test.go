package scene

import (
	"sync"
	"testing"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/lights"
	"github.com/tlecomte/go-raycaster/pkg/material"
	"github.com/tlecomte/go-raycaster/pkg/renderer"
)

type fakeVisualizer struct {
	mu     sync.Mutex
	width  int
	height int
	pixels map[[2]int]core.Vec3
}

func newFakeVisualizer(width, height int) *fakeVisualizer {
	return &fakeVisualizer{width: width, height: height, pixels: make(map[[2]int]core.Vec3)}
}

func (f *fakeVisualizer) Width() int  { return f.width }
func (f *fakeVisualizer) Height() int { return f.height }
func (f *fakeVisualizer) Update()     {}

func (f *fakeVisualizer) Plot(x, y int, color core.Vec3) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pixels[[2]int{x, y}] = color
}

type nopLogger struct{}

func (n *nopLogger) Printf(format string, args ...interface{}) {}

func testMaterial() *material.Material {
	return material.NewMaterial(core.Vec3{}, core.NewVec3(1, 1, 1), core.Vec3{}, 1, core.Vec3{})
}

func TestScene_AddIgnoresEmptyGeometry(t *testing.T) {
	s := NewScene(newFakeVisualizer(2, 2))
	s.Add(geometry.NewGeometry())
	if s.TriangleCount() != 0 {
		t.Errorf("Expected the empty geometry to be ignored, got %d triangles", s.TriangleCount())
	}
	if !s.BoundingBox().IsEmpty() {
		t.Error("Expected an empty scene bounding box")
	}
}

func TestScene_AddDeepCopies(t *testing.T) {
	s := NewScene(newFakeVisualizer(2, 2))

	cube := geometry.NewCube(testMaterial())
	s.Add(cube)
	cube.Translate(core.NewVec3(100, 0, 0))

	// The scene copy must not follow the source translation
	box := s.BoundingBox()
	if box.Max.X > 1 {
		t.Errorf("Scene geometry moved with the source: %v", box.Max)
	}
}

func TestScene_AddSmoothsNormals(t *testing.T) {
	s := NewScene(newFakeVisualizer(2, 2))
	s.Add(geometry.NewSquare(testMaterial()))

	if len(s.geometries) != 1 {
		t.Fatalf("Expected 1 geometry, got %d", len(s.geometries))
	}
	for _, tri := range s.geometries[0].Geometry.Triangles() {
		if tri.VertexNormals() == nil {
			t.Error("Expected smoothed vertex normals on added geometry")
		}
	}
}

func TestScene_AddGrowsBoundingBox(t *testing.T) {
	s := NewScene(newFakeVisualizer(2, 2))

	a := geometry.NewCube(testMaterial())
	s.Add(a)

	b := geometry.NewCube(testMaterial())
	b.Translate(core.NewVec3(10, 0, 0))
	s.Add(b)

	box := s.BoundingBox()
	if !box.Contains(core.NewVec3(-0.5, -0.5, -0.5)) || !box.Contains(core.NewVec3(10.5, 0.5, 0.5)) {
		t.Errorf("Scene bounding box %v/%v does not cover both cubes", box.Min, box.Max)
	}
}

func TestScene_AddLightSourceRegistersGeometry(t *testing.T) {
	s := NewScene(newFakeVisualizer(2, 2))

	light := lights.NewRectangleLight(
		core.NewVec3(0, 0, 5), core.IdentityQuaternion(), 1, 1,
		material.NewEmissive(core.NewVec3(1, 1, 1)), 9)
	s.AddLightSource(light)

	if len(s.areaLights) != 1 {
		t.Errorf("Expected 1 area light, got %d", len(s.areaLights))
	}
	// The emissive surface is also visible scene geometry
	if s.TriangleCount() != 2 {
		t.Errorf("Expected the light surface in the scene, got %d triangles", s.TriangleCount())
	}
}

func TestScene_ComputeEmptySceneIsBlack(t *testing.T) {
	visu := newFakeVisualizer(2, 2)
	s := NewScene(visu)
	s.SetLogger(&nopLogger{})
	s.SetCamera(renderer.NewCamera(core.NewVec3(0, -5, 0), core.NewVec3(0, 0, 0), 0.3, 1, 1))

	s.Compute(2, 1, 1)

	if len(visu.pixels) != 4 {
		t.Fatalf("Expected 4 pixels, got %d", len(visu.pixels))
	}
	for coord, color := range visu.pixels {
		if !color.IsZero() {
			t.Errorf("Pixel %v expected black, got %v", coord, color)
		}
	}
}

func TestScene_ComputeRendersLitWall(t *testing.T) {
	visu := newFakeVisualizer(4, 4)
	s := NewScene(visu)
	s.SetLogger(&nopLogger{})
	s.IndirectLighting = false

	wall := geometry.NewSquare(testMaterial())
	wall.Scale(20)
	s.Add(wall)
	s.AddPointLight(lights.NewPointLight(core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1)))
	s.SetCamera(renderer.NewCamera(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, 0), 0.3, 0.5, 0.5))

	s.Compute(2, 1, 1)

	lit := 0
	for _, color := range visu.pixels {
		if !color.IsZero() {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected lit pixels on the wall")
	}
}

func TestNewCornellScenes(t *testing.T) {
	visu := newFakeVisualizer(2, 2)

	diffuse := NewDiffuseCornellScene(visu)
	if diffuse.TriangleCount() == 0 {
		t.Error("Diffuse cornell scene has no geometry")
	}
	if len(diffuse.pointLights) != 2 || len(diffuse.areaLights) != 1 {
		t.Errorf("Diffuse cornell scene lights: %d point, %d area",
			len(diffuse.pointLights), len(diffuse.areaLights))
	}

	specular := NewSpecularCornellScene(visu)
	if specular.TriangleCount() == 0 || len(specular.areaLights) != 1 {
		t.Error("Specular cornell scene incomplete")
	}

	mixed := NewMixedCornellScene(visu)
	if mixed.TriangleCount() == 0 {
		t.Error("Mixed cornell scene has no geometry")
	}
}
