package geometry

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// computeVertexNormals assigns per-vertex normals to the given
// triangles. For each triangle corner, the assigned normal is the
// normalized sum of the incident face normals whose angle with the
// triangle's own face normal stays within the limit; crease-forming
// neighbors are excluded, so sharp edges keep the flat face normal.
func computeVertexNormals(triangles []*Triangle, angle float64) {
	cosLimit := math.Cos(angle)

	// Incident face normals per vertex position. Vertex pointers are
	// stable identities within the owning store.
	incident := make(map[*core.Vec3][]core.Vec3)
	for _, t := range triangles {
		n := t.Normal()
		for i := 0; i < 3; i++ {
			incident[t.vertices[i]] = append(incident[t.vertices[i]], n)
		}
	}

	for _, t := range triangles {
		faceNormal := t.Normal()
		var normals [3]core.Vec3
		for i := 0; i < 3; i++ {
			sum := core.Vec3{}
			for _, n := range incident[t.vertices[i]] {
				if n.Dot(faceNormal) >= cosLimit {
					sum = sum.Add(n)
				}
			}
			if sum.IsZero() {
				normals[i] = faceNormal
			} else {
				normals[i] = sum.Normalize()
			}
		}
		t.SetVertexNormals(&normals)
	}
}
