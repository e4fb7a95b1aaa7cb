package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/lights"
)

// Accelerator selects the ray/scene intersection strategy
type Accelerator int

const (
	// AccelBVH traverses the bounding volume hierarchy
	AccelBVH Accelerator = iota
	// AccelLinear scans every geometry whose bounding box the ray enters
	AccelLinear
)

// reflectionCoeff attenuates the mirrored contribution of sendRay
const reflectionCoeff = 0.1

// Options configures the renderer
type Options struct {
	Accelerator      Accelerator
	SurfaceLighting  bool // direct term from stratified area lights instead of point lights
	IndirectLighting bool // Monte Carlo path tracing instead of direct + mirror only
	SharedSeed       bool // reseed the per-worker generator from a common per-pass seed before each pixel
	Workers          int  // 0 uses the default worker count
	Logger           core.Logger
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer is the rendering kernel. It holds a frozen view of the scene
// (geometries, lights, acceleration structure) and is safe for
// concurrent use once constructed.
type Renderer struct {
	geometries  []geometry.GeometryRef
	pointLights []lights.PointLight
	areaLights  []lights.LightSource
	bvh         *geometry.BVH
	opts        Options
}

// NewRenderer creates a renderer over the given scene content and
// builds the acceleration structure.
func NewRenderer(geometries []geometry.GeometryRef, pointLights []lights.PointLight, areaLights []lights.LightSource, opts Options) *Renderer {
	if opts.Logger == nil {
		opts.Logger = NewDefaultLogger()
	}
	r := &Renderer{
		geometries:  geometries,
		pointLights: pointLights,
		areaLights:  areaLights,
		opts:        opts,
	}
	if opts.Accelerator == AccelBVH {
		r.bvh = geometry.NewBVH(geometries)
	}
	return r
}

// trace records the closest intersection of the ray with the scene
func (r *Renderer) trace(cray *geometry.CastedRay) {
	if r.opts.Accelerator == AccelBVH {
		r.bvh.Path(cray)
		return
	}
	for _, ref := range r.geometries {
		if ref.Box.IsEmpty() {
			continue
		}
		if _, _, ok := ref.Box.Intersect(cray.Ray, 0, cray.T); ok {
			ref.Geometry.Intersection(cray)
		}
	}
}

// SendRay traces the ray and shades the closest hit with the Phong
// model plus a mirrored recursion. Rays past the maximum depth and rays
// leaving the scene contribute black.
func (r *Renderer) SendRay(ray core.Ray, depth, maxDepth int, random *rand.Rand) core.Vec3 {
	if depth > maxDepth {
		return core.Vec3{}
	}

	cray := geometry.NewCastedRay(ray)
	r.trace(&cray)
	if !cray.ValidIntersectionFound() {
		return core.Vec3{}
	}

	mat := cray.Triangle.Material()
	result := mat.Emissive.
		Add(r.phongDirect(&cray, random)).
		Add(r.reflection(&cray, depth, maxDepth, random))
	return result.MultiplyVec(cray.Triangle.SampleTexture(cray.U, cray.V))
}

// reflection shades the mirrored bounce of sendRay
func (r *Renderer) reflection(cray *geometry.CastedRay, depth, maxDepth int, random *rand.Rand) core.Vec3 {
	n := cray.Triangle.SampleNormal(cray.U, cray.V, cray.Direction)
	reflected := geometry.Reflect(cray.Direction.Normalize(), n)
	bounce := core.NewRay(cray.IntersectionPoint(), reflected)

	specular := cray.Triangle.Material().Specular
	return specular.MultiplyVec(r.SendRay(bounce, depth+1, maxDepth, random)).Multiply(reflectionCoeff)
}

// PathTracing estimates the radiance along the ray with Monte Carlo
// integration: direct Phong lighting at the hit plus one probabilistic
// indirect bounce, terminated by Russian roulette. A hard cap at
// maxDepth bounds the recursion in degenerate scenes.
func (r *Renderer) PathTracing(ray core.Ray, depth, maxDepth int, random *rand.Rand) core.Vec3 {
	cray := geometry.NewCastedRay(ray)
	r.trace(&cray)
	if !cray.ValidIntersectionFound() {
		return core.Vec3{}
	}

	mat := cray.Triangle.Material()
	texture := cray.Triangle.SampleTexture(cray.U, cray.V)
	emitted := mat.Emissive.Add(r.phongDirect(&cray, random).MultiplyVec(texture))

	p := random.Float64()
	absorption := 1 - p
	if p >= absorption || depth >= maxDepth {
		return emitted
	}

	n := cray.Triangle.SampleNormal(cray.U, cray.V, cray.Direction)
	direction := core.SampleUniformHemisphere(n, random)
	bounce := core.NewRay(cray.IntersectionPoint(), direction)
	indirect := r.PathTracing(bounce, depth+1, maxDepth, random).Multiply(absorption)
	return emitted.Add(indirect)
}

// phongDirect accumulates the direct lighting at the hit: one
// stratified sample per surface light when surface lighting is enabled
// and any exist, otherwise every point light, each guarded by a shadow
// test.
func (r *Renderer) phongDirect(cray *geometry.CastedRay, random *rand.Rand) core.Vec3 {
	result := core.Vec3{}
	if r.opts.SurfaceLighting && len(r.areaLights) > 0 {
		for _, src := range r.areaLights {
			light := src.Generate(random)
			if !r.phongShadow(cray, light) {
				result = result.Add(
					r.phongDiffuse(cray, light).Add(r.phongSpecular(cray, light)).MultiplyVec(light.Color))
			}
		}
		return result
	}

	for _, light := range r.pointLights {
		if !r.phongShadow(cray, light) {
			result = result.Add(
				r.phongDiffuse(cray, light).Add(r.phongSpecular(cray, light)).MultiplyVec(light.Color))
		}
	}
	return result
}

// phongDiffuse computes the diffuse term, attenuated by the inverse
// distance to the light.
func (r *Renderer) phongDiffuse(cray *geometry.CastedRay, light lights.PointLight) core.Vec3 {
	kd := cray.Triangle.Material().Diffuse

	n := cray.Triangle.SampleNormal(cray.U, cray.V, cray.Direction)
	// Orient the normal along the viewing direction, matching the
	// light-to-surface vector below
	if n.Dot(cray.Direction) < 0 {
		n = n.Negate()
	}

	l := cray.IntersectionPoint().Subtract(light.Position)
	diffuse := kd.Multiply(math.Max(0, n.Dot(l.Normalize())))
	return diffuse.Multiply(1 / l.Length())
}

// phongSpecular computes the specular term, attenuated by the inverse
// distance to the light.
func (r *Renderer) phongSpecular(cray *geometry.CastedRay, light lights.PointLight) core.Vec3 {
	mat := cray.Triangle.Material()

	v := cray.Direction.Normalize().Negate()
	l := cray.IntersectionPoint().Subtract(light.Position)
	n := cray.Triangle.SampleNormal(cray.U, cray.V, cray.Direction)
	reflected := geometry.Reflect(l.Normalize(), n)

	specular := mat.Specular.Multiply(math.Pow(math.Max(0, v.Dot(reflected)), mat.Shininess))
	return specular.Multiply(1 / l.Length())
}

// phongShadow reports whether the hit point is occluded from the light.
// The occluder is identified by triangle identity, so the surface
// carrying the hit never shadows itself.
func (r *Renderer) phongShadow(cray *geometry.CastedRay, light lights.PointLight) bool {
	shadow := geometry.NewCastedRay(
		core.NewRay(light.Position, cray.IntersectionPoint().Subtract(light.Position)))
	r.trace(&shadow)
	return shadow.ValidIntersectionFound() && shadow.Triangle != cray.Triangle
}
