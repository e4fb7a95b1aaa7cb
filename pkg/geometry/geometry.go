package geometry

import (
	"fmt"

	"github.com/tlecomte/go-raycaster/pkg/core"
	"github.com/tlecomte/go-raycaster/pkg/material"
)

// Geometry is a triangle mesh owning its vertices, texture coordinates
// and triangles. The vertex and texture stores are append-only and
// pointer-stable, so triangle references stay valid as the mesh grows.
type Geometry struct {
	vertices      vec3Store
	textureCoords vec2Store
	triangles     []*Triangle
}

// NewGeometry creates an empty mesh
func NewGeometry() *Geometry {
	return &Geometry{}
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int {
	return g.vertices.len()
}

// Vertex returns the position of the i-th vertex
func (g *Geometry) Vertex(i int) core.Vec3 {
	return *g.vertices.at(i)
}

// Triangles returns the triangles of the mesh
func (g *Geometry) Triangles() []*Triangle {
	return g.triangles
}

// AddVertex appends a vertex and returns its index
func (g *Geometry) AddVertex(v core.Vec3) int {
	g.vertices.append(v)
	return g.vertices.len() - 1
}

// AddTextureCoordinates appends a texture coordinate pair and returns its index
func (g *Geometry) AddTextureCoordinates(c core.Vec2) int {
	g.textureCoords.append(c)
	return g.textureCoords.len() - 1
}

// AddTriangle adds a triangle referencing three vertex indices. When the
// mesh carries texture coordinates, the same indices reference them.
// Out-of-range indices are a programmer error and panic.
func (g *Geometry) AddTriangle(i1, i2, i3 int, mat *material.Material, normals *[3]core.Vec3) {
	g.checkVertexIndex(i1)
	g.checkVertexIndex(i2)
	g.checkVertexIndex(i3)
	if g.textureCoords.len() == 0 {
		g.triangles = append(g.triangles, NewTriangle(
			g.vertices.at(i1), g.vertices.at(i2), g.vertices.at(i3), mat, copyNormals(normals)))
		return
	}
	g.AddTriangleTextured(i1, i2, i3, i1, i2, i3, mat, normals)
}

// AddTriangleTextured adds a triangle with separate texture coordinate indices
func (g *Geometry) AddTriangleTextured(i1, i2, i3, t1, t2, t3 int, mat *material.Material, normals *[3]core.Vec3) {
	g.checkVertexIndex(i1)
	g.checkVertexIndex(i2)
	g.checkVertexIndex(i3)
	g.triangles = append(g.triangles, NewTriangleWithTexture(
		g.vertices.at(i1), g.vertices.at(i2), g.vertices.at(i3),
		g.textureCoords.at(t1), g.textureCoords.at(t2), g.textureCoords.at(t3),
		mat, copyNormals(normals)))
}

// AddTriangleVertices adds a triangle from three new vertex positions
func (g *Geometry) AddTriangleVertices(p0, p1, p2 core.Vec3, mat *material.Material, normals *[3]core.Vec3) {
	i1 := g.AddVertex(p0)
	i2 := g.AddVertex(p1)
	i3 := g.AddVertex(p2)
	g.AddTriangle(i1, i2, i3, mat, normals)
}

// AddTriangleCopy deep-copies a triangle into this mesh: its vertex
// positions and vertex normals are duplicated so that no reference to
// the source triangle remains.
func (g *Geometry) AddTriangleCopy(t *Triangle) {
	g.AddTriangleVertices(t.Vertex(0), t.Vertex(1), t.Vertex(2), t.Material(), t.VertexNormals())
}

func (g *Geometry) checkVertexIndex(i int) {
	if i < 0 || i >= g.vertices.len() {
		panic(fmt.Sprintf("geometry: vertex index %d out of range (%d vertices)", i, g.vertices.len()))
	}
}

func copyNormals(normals *[3]core.Vec3) *[3]core.Vec3 {
	if normals == nil {
		return nil
	}
	c := *normals
	return &c
}

// Merge deep-copies another geometry into this one
func (g *Geometry) Merge(other *Geometry) {
	vertexIndex := make(map[*core.Vec3]int, other.vertices.len())
	for i := 0; i < other.vertices.len(); i++ {
		vertexIndex[other.vertices.at(i)] = g.AddVertex(*other.vertices.at(i))
	}
	textureIndex := make(map[*core.Vec2]int, other.textureCoords.len())
	for i := 0; i < other.textureCoords.len(); i++ {
		textureIndex[other.textureCoords.at(i)] = g.AddTextureCoordinates(*other.textureCoords.at(i))
	}

	for _, t := range other.triangles {
		i1 := vertexIndex[t.vertices[0]]
		i2 := vertexIndex[t.vertices[1]]
		i3 := vertexIndex[t.vertices[2]]
		if t.HasTextureCoords() {
			g.AddTriangleTextured(i1, i2, i3,
				textureIndex[t.textureCoords[0]],
				textureIndex[t.textureCoords[1]],
				textureIndex[t.textureCoords[2]],
				t.mat, t.vertexNormals)
		} else {
			g.AddTriangle(i1, i2, i3, t.mat, t.vertexNormals)
		}
	}
}

// updateTriangles refreshes the cached fields of every triangle after a
// transform of the underlying vertices.
func (g *Geometry) updateTriangles() {
	for _, t := range g.triangles {
		t.Update()
	}
}

// Translate moves the whole mesh
func (g *Geometry) Translate(t core.Vec3) {
	g.vertices.forEach(func(v *core.Vec3) {
		*v = v.Add(t)
	})
	g.updateTriangles()
}

// Scale applies a uniform scale factor
func (g *Geometry) Scale(f float64) {
	g.vertices.forEach(func(v *core.Vec3) {
		*v = v.Multiply(f)
	})
	g.updateTriangles()
}

// ScaleX scales the mesh along the X axis
func (g *Geometry) ScaleX(f float64) {
	g.vertices.forEach(func(v *core.Vec3) {
		v.X *= f
	})
	g.updateTriangles()
}

// ScaleY scales the mesh along the Y axis
func (g *Geometry) ScaleY(f float64) {
	g.vertices.forEach(func(v *core.Vec3) {
		v.Y *= f
	})
	g.updateTriangles()
}

// ScaleZ scales the mesh along the Z axis
func (g *Geometry) ScaleZ(f float64) {
	g.vertices.forEach(func(v *core.Vec3) {
		v.Z *= f
	})
	g.updateTriangles()
}

// Rotate rotates the mesh by the given quaternion
func (g *Geometry) Rotate(q core.Quaternion) {
	g.vertices.forEach(func(v *core.Vec3) {
		*v = q.Rotate(*v)
	})
	g.updateTriangles()
}

// BoundingBox returns the axis-aligned bounding box of all vertices
func (g *Geometry) BoundingBox() core.AABB {
	box := core.EmptyAABB()
	g.vertices.forEach(func(v *core.Vec3) {
		box.AddPoint(*v)
	})
	return box
}

// Intersection intersects the ray with every triangle of the mesh and
// reports whether any hit was recorded.
func (g *Geometry) Intersection(cray *CastedRay) bool {
	for _, t := range g.triangles {
		cray.Intersect(t)
	}
	return cray.ValidIntersectionFound()
}

// ComputeVertexNormals assigns smoothed per-vertex normals, averaging
// adjacent face normals whose angle stays below the given limit.
func (g *Geometry) ComputeVertexNormals(angle float64) {
	computeVertexNormals(g.triangles, angle)
}

// GeometryRef pairs a geometry with its bounding box as stored by the
// scene and referenced from BVH leaves.
type GeometryRef struct {
	Box      core.AABB
	Geometry *Geometry
}
