package geometry

import (
	"math"
	"testing"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

func TestCastedRay_KeepsClosestHit(t *testing.T) {
	near := singleTriangle(t,
		core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1), core.NewVec3(0, 1, 1))
	far := singleTriangle(t,
		core.NewVec3(-1, -1, 3), core.NewVec3(1, -1, 3), core.NewVec3(0, 1, 3))

	cray := NewCastedRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	if cray.ValidIntersectionFound() {
		t.Fatal("New casted ray must start without a hit")
	}

	// Testing far first, near second must end on the near hit
	cray.Intersect(far)
	cray.Intersect(near)
	if cray.Triangle != near {
		t.Error("Expected the closest triangle to win")
	}
	if math.Abs(cray.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %f", cray.T)
	}

	// A farther candidate never replaces the record
	cray.Intersect(far)
	if cray.Triangle != near {
		t.Error("A farther hit replaced the record")
	}
}

func TestCastedRay_RejectsNearOrigin(t *testing.T) {
	tri := singleTriangle(t,
		core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0))

	// Origin exactly on the triangle: the epsilon guard rejects the hit
	cray := NewCastedRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	cray.Intersect(tri)
	if cray.ValidIntersectionFound() {
		t.Error("Hit at the ray origin must be rejected")
	}
}

func TestCastedRay_IntersectionPoint(t *testing.T) {
	tri := singleTriangle(t,
		core.NewVec3(-1, -1, 2), core.NewVec3(1, -1, 2), core.NewVec3(0, 1, 2))

	cray := NewCastedRay(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	cray.Intersect(tri)
	if !cray.ValidIntersectionFound() {
		t.Fatal("Expected a hit")
	}
	point := cray.IntersectionPoint()
	if point.Subtract(core.NewVec3(0, 0, 2)).Length() > 1e-9 {
		t.Errorf("Expected hit at {0,0,2}, got %v", point)
	}
}
