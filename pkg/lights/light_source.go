package lights

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// LightSource is a surface-area light: an emissive geometry that can
// sample points on itself. Each Generate call emits a point light placed
// on the surface, drawn from the next cell of a precomputed
// stratification of the [0,1]² sample domain in round-robin order.
type LightSource interface {
	// Generate samples a point on the light surface using the caller's
	// random generator and returns it as a point light.
	Generate(random *rand.Rand) PointLight

	// Geometry returns the emissive surface, which is also visible
	// scene geometry.
	Geometry() *geometry.Geometry

	// SampleCount returns the number of strata of the sample domain.
	SampleCount() int
}

// Stratum is a sub-interval of the [0,1]² sample domain
type Stratum struct {
	Inf1, Sup1 float64
	Inf2, Sup2 float64
}

// source carries the state shared by all light source kinds: the
// emissive geometry, the stratified sample domain and the round-robin
// counter. The counter is atomic because render workers sample lights
// concurrently.
type source struct {
	geom        *geometry.Geometry
	position    core.Vec3
	color       core.Vec3
	sampleCount int
	strata      []Stratum
	counter     int64 // accessed atomically
}

func newSource(position core.Vec3, sampleCount int, mat *material.Material) source {
	if sampleCount < 1 {
		sampleCount = 1
	}
	return source{
		geom:        geometry.NewGeometry(),
		position:    position,
		color:       mat.Emissive,
		sampleCount: sampleCount,
		strata:      computeStrata(sampleCount),
	}
}

// computeStrata divides [0,1]² into n rectangular cells. The grid is
// √n × √n when n is a perfect square; otherwise full rows of ⌈√n⌉ cells
// are laid out and the remaining cells widen to complete the last row,
// so the union of all cells is exactly the unit square.
func computeStrata(n int) []Stratum {
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	lastRowCells := n - (rows-1)*cols

	strata := make([]Stratum, 0, n)
	for r := 0; r < rows; r++ {
		cells := cols
		if r == rows-1 {
			cells = lastRowCells
		}
		for c := 0; c < cells; c++ {
			strata = append(strata, Stratum{
				Inf1: float64(c) / float64(cells),
				Sup1: float64(c+1) / float64(cells),
				Inf2: float64(r) / float64(rows),
				Sup2: float64(r+1) / float64(rows),
			})
		}
	}
	return strata
}

// nextSample draws a uniform (u, v) inside the next stratum and
// advances the round-robin counter.
func (s *source) nextSample(random *rand.Rand) (u, v float64) {
	i := int(atomic.AddInt64(&s.counter, 1)-1) % s.sampleCount
	st := s.strata[i]
	u = st.Inf1 + random.Float64()*(st.Sup1-st.Inf1)
	v = st.Inf2 + random.Float64()*(st.Sup2-st.Inf2)
	return u, v
}

// Geometry returns the emissive surface mesh
func (s *source) Geometry() *geometry.Geometry {
	return s.geom
}

// SampleCount returns the number of strata
func (s *source) SampleCount() int {
	return s.sampleCount
}

// Position returns the placement of the light
func (s *source) Position() core.Vec3 {
	return s.position
}

// Color returns the emitted light color
func (s *source) Color() core.Vec3 {
	return s.color
}

// Strata exposes the stratification of the sample domain
func (s *source) Strata() []Stratum {
	return s.strata
}
