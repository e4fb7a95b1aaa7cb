package scene

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/lights"
	"github.com/tlecomte/go-raycaster/pkg/renderer"
)

// smoothingAngle is the vertex-normal smoothing threshold applied to
// every geometry added to the scene.
const smoothingAngle = math.Pi / 8

// Scene owns the geometries, lights and camera of a renderable scene
// and exposes the authoring API consumed by scene drivers. All content
// is added before Compute and frozen once rendering starts.
type Scene struct {
	visu        renderer.Visualizer
	geometries  []geometry.GeometryRef
	pointLights []lights.PointLight
	areaLights  []lights.LightSource
	camera      renderer.Camera
	boundingBox core.AABB

	diffuseSamples  int
	specularSamples int
	lightSamples    int

	// Rendering switches
	SurfaceLighting  bool // direct lighting from stratified area lights
	IndirectLighting bool // path tracing instead of direct + mirror
	SharedSeed       bool // reseed workers from a common per-pass seed
	Accelerator      renderer.Accelerator
	Workers          int

	logger core.Logger
}

// NewScene creates an empty scene rendering into the given visualizer
func NewScene(visu renderer.Visualizer) *Scene {
	return &Scene{
		visu:             visu,
		boundingBox:      core.EmptyAABB(),
		diffuseSamples:   30,
		specularSamples:  30,
		SurfaceLighting:  true,
		IndirectLighting: true,
		Accelerator:      renderer.AccelBVH,
		logger:           renderer.NewDefaultLogger(),
	}
}

// SetLogger replaces the scene logger
func (s *Scene) SetLogger(logger core.Logger) {
	s.logger = logger
}

// Add deep-copies a geometry into the scene, smooths its vertex normals
// and grows the scene bounding box. Empty geometries are ignored.
func (s *Scene) Add(g *geometry.Geometry) {
	if g.VertexCount() == 0 {
		return
	}
	merged := geometry.NewGeometry()
	merged.Merge(g)
	merged.ComputeVertexNormals(smoothingAngle)

	box := merged.BoundingBox()
	s.geometries = append(s.geometries, geometry.GeometryRef{Box: box, Geometry: merged})
	s.boundingBox.Update(box)
}

// AddPointLight appends a point light
func (s *Scene) AddPointLight(light lights.PointLight) {
	s.pointLights = append(s.pointLights, light)
}

// AddLightSource appends a surface light to the area light list and its
// emissive surface to the scene geometry, making the light visible.
func (s *Scene) AddLightSource(light lights.LightSource) {
	s.areaLights = append(s.areaLights, light)
	s.Add(light.Geometry())
}

// SetCamera sets the camera
func (s *Scene) SetCamera(camera renderer.Camera) {
	s.camera = camera
}

// SetDiffuseSamples sets the number of diffuse samples (advisory)
func (s *Scene) SetDiffuseSamples(n int) {
	s.diffuseSamples = n
}

// SetSpecularSamples sets the number of specular samples (advisory)
func (s *Scene) SetSpecularSamples(n int) {
	s.specularSamples = n
}

// SetLightSamples sets the number of samples per surface light (advisory)
func (s *Scene) SetLightSamples(n int) {
	s.lightSamples = n
}

// BoundingBox returns the bounding box of all added geometries
func (s *Scene) BoundingBox() core.AABB {
	return s.boundingBox
}

// TriangleCount returns the total number of triangles in the scene
func (s *Scene) TriangleCount() int {
	count := 0
	for _, ref := range s.geometries {
		count += len(ref.Geometry.Triangles())
	}
	return count
}

// PrintStats logs basic statistics about the scene content
func (s *Scene) PrintStats() {
	s.logger.Printf("Scene: %d triangles\n", s.TriangleCount())
}

// Compute renders the scene into the visualizer: the acceleration
// structure is built once, then passPerPixel × subPixelDivision² passes
// accumulate samples for every pixel.
func (s *Scene) Compute(maxDepth, subPixelDivision, passPerPixel int) {
	r := renderer.NewRenderer(s.geometries, s.pointLights, s.areaLights, renderer.Options{
		Accelerator:      s.Accelerator,
		SurfaceLighting:  s.SurfaceLighting,
		IndirectLighting: s.IndirectLighting,
		SharedSeed:       s.SharedSeed,
		Workers:          s.Workers,
		Logger:           s.logger,
	})
	r.Render(s.visu, s.camera, maxDepth, subPixelDivision, passPerPixel)
}
