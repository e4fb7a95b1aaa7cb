package geometry

import (
	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// intersectionEpsilon rejects hits too close to the ray origin to avoid
// self-intersection of secondary rays.
const intersectionEpsilon = 1e-6

// Triangle references three vertex positions in its owning Geometry,
// optional per-vertex texture coordinates and normals, and a material.
// The face normal, edge vectors and center are cached; Update must be
// called after the referenced vertices change.
type Triangle struct {
	vertices      [3]*core.Vec3
	textureCoords [3]*core.Vec2
	vertexNormals *[3]core.Vec3
	mat           *material.Material

	normal core.Vec3
	edge1  core.Vec3
	edge2  core.Vec3
	center core.Vec3
}

// NewTriangle creates a triangle from three vertex references
func NewTriangle(v0, v1, v2 *core.Vec3, mat *material.Material, normals *[3]core.Vec3) *Triangle {
	t := &Triangle{
		vertices:      [3]*core.Vec3{v0, v1, v2},
		vertexNormals: normals,
		mat:           mat,
	}
	t.Update()
	return t
}

// NewTriangleWithTexture creates a triangle with per-vertex texture coordinates
func NewTriangleWithTexture(v0, v1, v2 *core.Vec3, t0, t1, t2 *core.Vec2, mat *material.Material, normals *[3]core.Vec3) *Triangle {
	t := NewTriangle(v0, v1, v2, mat, normals)
	t.textureCoords = [3]*core.Vec2{t0, t1, t2}
	return t
}

// Update recomputes the cached face normal, edges and center. It must be
// called after any transform of the underlying vertices.
func (t *Triangle) Update() {
	v0, v1, v2 := *t.vertices[0], *t.vertices[1], *t.vertices[2]
	t.edge1 = v1.Subtract(v0)
	t.edge2 = v2.Subtract(v0)
	t.normal = t.edge1.Cross(t.edge2).Normalize()
	t.center = v0.Add(v1).Add(v2).Multiply(1.0 / 3.0)
}

// Vertex returns the i-th vertex position
func (t *Triangle) Vertex(i int) core.Vec3 {
	return *t.vertices[i]
}

// Normal returns the cached face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Center returns the cached centroid
func (t *Triangle) Center() core.Vec3 {
	return t.center
}

// Material returns the triangle's material
func (t *Triangle) Material() *material.Material {
	return t.mat
}

// VertexNormals returns the per-vertex normals, nil when the triangle is flat-shaded
func (t *Triangle) VertexNormals() *[3]core.Vec3 {
	return t.vertexNormals
}

// SetVertexNormals assigns per-vertex normals (used by normal smoothing)
func (t *Triangle) SetVertexNormals(normals *[3]core.Vec3) {
	t.vertexNormals = normals
}

// HasTextureCoords reports whether per-vertex texture coordinates are present
func (t *Triangle) HasTextureCoords() bool {
	return t.textureCoords[0] != nil
}

// BoundingBox returns the axis-aligned bounding box of the triangle
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(*t.vertices[0], *t.vertices[1], *t.vertices[2])
}

// Intersect tests the ray against the triangle using the Möller-Trumbore
// algorithm. On a hit it returns the ray parameter and the barycentric
// coordinates (u, v) of the intersection.
func (t *Triangle) Intersect(ray core.Ray) (tHit, u, v float64, ok bool) {
	const epsilon = 1e-8

	p := ray.Direction.Cross(t.edge2)
	det := t.edge1.Dot(p)

	// Near-zero determinant: ray parallel to the triangle plane
	if det > -epsilon && det < epsilon {
		return 0, 0, 0, false
	}

	invDet := 1.0 / det
	s := ray.Origin.Subtract(*t.vertices[0])
	u = s.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(t.edge1)
	v = ray.Direction.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	tHit = t.edge2.Dot(q) * invDet
	if tHit <= intersectionEpsilon {
		return 0, 0, 0, false
	}

	return tHit, u, v, true
}

// SampleNormal returns the shading normal at barycentric coordinates
// (u, v): the interpolated per-vertex normal when present, the face
// normal otherwise. The result is flipped when it points along the
// incoming direction, so that it always faces the ray origin.
func (t *Triangle) SampleNormal(u, v float64, direction core.Vec3) core.Vec3 {
	var n core.Vec3
	if t.vertexNormals != nil {
		w := 1.0 - u - v
		n = t.vertexNormals[0].Multiply(w).
			Add(t.vertexNormals[1].Multiply(u)).
			Add(t.vertexNormals[2].Multiply(v)).
			Normalize()
	} else {
		n = t.normal
	}
	if n.Dot(direction) > 0 {
		n = n.Negate()
	}
	return n
}

// SampleTexture returns the texture color at barycentric coordinates
// (u, v). Triangles without texture coordinates or with an untextured
// material sample white.
func (t *Triangle) SampleTexture(u, v float64) core.Vec3 {
	if t.mat == nil {
		return core.NewVec3(1, 1, 1)
	}
	if !t.HasTextureCoords() {
		return core.NewVec3(1, 1, 1)
	}
	w := 1.0 - u - v
	uv := t.textureCoords[0].Multiply(w).
		Add(t.textureCoords[1].Multiply(u)).
		Add(t.textureCoords[2].Multiply(v))
	return t.mat.SampleTexture(uv.X, uv.Y)
}

// Reflect returns the reflection of the incident direction about the
// surface normal. Both vectors are expected to be unit length.
func Reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}
