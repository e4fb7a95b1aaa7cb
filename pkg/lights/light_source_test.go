package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/geometry"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

func emissiveMaterial() *material.Material {
	return material.NewEmissive(core.NewVec3(1, 1, 1))
}

func newTestTriangleMesh() *geometry.Geometry {
	g := geometry.NewGeometry()
	g.AddTriangleVertices(
		core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
		emissiveMaterial(), nil)
	return g
}

func TestComputeStrata_PerfectSquare(t *testing.T) {
	strata := computeStrata(25)
	if len(strata) != 25 {
		t.Fatalf("Expected 25 strata, got %d", len(strata))
	}
	// 5x5 grid: every cell is 0.2 x 0.2
	for _, s := range strata {
		if math.Abs((s.Sup1-s.Inf1)-0.2) > 1e-9 || math.Abs((s.Sup2-s.Inf2)-0.2) > 1e-9 {
			t.Errorf("Expected 0.2x0.2 cells, got %+v", s)
		}
	}
}

func TestComputeStrata_CoversUnitSquare(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 16, 25, 30, 64, 100} {
		strata := computeStrata(n)
		if len(strata) != n {
			t.Fatalf("n=%d: expected %d strata, got %d", n, n, len(strata))
		}

		// The cell areas sum to 1
		area := 0.0
		for _, s := range strata {
			area += (s.Sup1 - s.Inf1) * (s.Sup2 - s.Inf2)
		}
		if math.Abs(area-1) > 1e-9 {
			t.Errorf("n=%d: strata cover area %f, expected 1", n, area)
		}

		// Any sample point of the unit square falls in exactly one cell
		random := rand.New(rand.NewSource(int64(n)))
		for i := 0; i < 200; i++ {
			u := random.Float64()
			v := random.Float64()
			inside := 0
			for _, s := range strata {
				if u >= s.Inf1 && u < s.Sup1 && v >= s.Inf2 && v < s.Sup2 {
					inside++
				}
			}
			if inside != 1 {
				t.Fatalf("n=%d: point (%f,%f) covered by %d cells", n, u, v, inside)
			}
		}
	}
}

func TestSource_RoundRobinStratification(t *testing.T) {
	const n = 10
	src := newSource(core.Vec3{}, n, emissiveMaterial())
	random := rand.New(rand.NewSource(42))

	// n draws visit every stratum exactly once
	visited := make(map[int]int)
	for i := 0; i < n; i++ {
		u, v := src.nextSample(random)
		idx := -1
		for si, s := range src.strata {
			if u >= s.Inf1 && u <= s.Sup1 && v >= s.Inf2 && v <= s.Sup2 {
				idx = si
				break
			}
		}
		if idx < 0 {
			t.Fatalf("Sample (%f,%f) outside every stratum", u, v)
		}
		visited[idx]++
	}
	if len(visited) != n {
		t.Errorf("Expected %d distinct strata, visited %d", n, len(visited))
	}

	// The next draw wraps around to the first stratum
	u, v := src.nextSample(random)
	s := src.strata[0]
	if u < s.Inf1 || u > s.Sup1 || v < s.Inf2 || v > s.Sup2 {
		t.Errorf("Round-robin did not wrap to the first stratum: (%f,%f)", u, v)
	}
}

func TestRectangleLight_Generate(t *testing.T) {
	position := core.NewVec3(1, 2, 3)
	light := NewRectangleLight(position, core.IdentityQuaternion(), 2, 1, emissiveMaterial(), 9)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		sample := light.Generate(random)
		local := sample.Position.Subtract(position)
		if local.X < 0 || local.X > 2 || local.Y < 0 || local.Y > 1 || math.Abs(local.Z) > 1e-9 {
			t.Fatalf("Sample %v outside the rectangle", sample.Position)
		}
		if !sample.Color.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("Expected the emissive color, got %v", sample.Color)
		}
	}
}

func TestRectangleLight_GenerateRotated(t *testing.T) {
	// Quarter turn around X maps the local Y extent onto Z
	rotation := core.NewQuaternion(core.NewVec3(1, 0, 0), math.Pi/2)
	light := NewRectangleLight(core.Vec3{}, rotation, 2, 1, emissiveMaterial(), 4)
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		sample := light.Generate(random)
		if math.Abs(sample.Position.Y) > 1e-9 {
			t.Fatalf("Rotated sample %v left the XZ plane", sample.Position)
		}
		if sample.Position.Z < -1e-9 || sample.Position.Z > 1+1e-9 {
			t.Fatalf("Rotated sample %v outside the mapped extent", sample.Position)
		}
	}
}

func TestDiskLight_Generate(t *testing.T) {
	position := core.NewVec3(0, 0, 5)
	const radius = 1.5
	light := NewDiskLight(position, core.IdentityQuaternion(), radius, 16, emissiveMaterial(), 16)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		sample := light.Generate(random)
		offset := sample.Position.Subtract(position)
		if math.Abs(offset.Z) > 1e-9 {
			t.Fatalf("Disk sample %v off the light plane", sample.Position)
		}
		if offset.Length() > radius+1e-9 {
			t.Fatalf("Disk sample %v outside the radius", sample.Position)
		}
	}
}

func TestSphereLight_Generate(t *testing.T) {
	position := core.NewVec3(2, -1, 4)
	const radius = 2.0
	light := NewSphereLight(position, radius, 12, emissiveMaterial(), 25)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		sample := light.Generate(random)
		distance := sample.Position.Subtract(position).Length()
		if math.Abs(distance-radius) > 1e-9 {
			t.Fatalf("Sphere sample at distance %f, expected %f", distance, radius)
		}
	}
}

func TestSurfaceLight_Generate(t *testing.T) {
	// A single triangle surface: every sample must land on it
	mesh := newTestTriangleMesh()
	light := NewSurfaceLight(mesh, emissiveMaterial(), 9)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		sample := light.Generate(random)
		p := sample.Position
		if math.Abs(p.Z) > 1e-9 {
			t.Fatalf("Surface sample %v off the triangle plane", p)
		}
		// Inside the triangle (0,0) (2,0) (0,2): x,y >= 0 and x+y <= 2
		if p.X < -1e-9 || p.Y < -1e-9 || p.X+p.Y > 2+1e-9 {
			t.Fatalf("Surface sample %v outside the triangle", p)
		}
	}
}

func TestLightSource_GeometryIsVisible(t *testing.T) {
	light := NewRectangleLight(core.Vec3{}, core.IdentityQuaternion(), 1, 1, emissiveMaterial(), 4)
	if light.Geometry() == nil || len(light.Geometry().Triangles()) != 2 {
		t.Error("Rectangle light must expose its emissive surface")
	}
	if light.SampleCount() != 4 {
		t.Errorf("Expected 4 samples, got %d", light.SampleCount())
	}
}
