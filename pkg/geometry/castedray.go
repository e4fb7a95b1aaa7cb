package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// CastedRay is a ray together with its best-so-far hit record. The
// record is updated monotonically as candidate triangles are tested:
// a candidate replaces the current hit only when its parameter is
// strictly smaller.
type CastedRay struct {
	core.Ray
	T        float64
	Triangle *Triangle
	U, V     float64
}

// NewCastedRay creates a casted ray with an empty hit record
func NewCastedRay(ray core.Ray) CastedRay {
	return CastedRay{Ray: ray, T: math.Inf(1)}
}

// Intersect tests the triangle and merges the hit into the record when
// it is closer than the current best.
func (cr *CastedRay) Intersect(tri *Triangle) {
	t, u, v, ok := tri.Intersect(cr.Ray)
	if !ok || t >= cr.T {
		return
	}
	cr.T = t
	cr.Triangle = tri
	cr.U = u
	cr.V = v
}

// ValidIntersectionFound reports whether any triangle has been hit
func (cr *CastedRay) ValidIntersectionFound() bool {
	return cr.Triangle != nil
}

// IntersectionPoint returns the position of the recorded hit
func (cr *CastedRay) IntersectionPoint() core.Vec3 {
	return cr.At(cr.T)
}
