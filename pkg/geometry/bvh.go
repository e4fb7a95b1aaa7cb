package geometry

import (
	"math"
	"sort"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// bvhLeafThreshold is the maximum number of triangles stored in a leaf.
const bvhLeafThreshold = 8

// bvhMaxDepth caps the recursion; deeper subtrees degrade to a linear
// scan over their leaf triangles instead of aborting.
const bvhMaxDepth = 32

// bvhPrimitive tracks a triangle with its source geometry and original
// insertion index, which breaks centroid ties deterministically.
type bvhPrimitive struct {
	triangle *Triangle
	source   GeometryRef
	box      core.AABB
	index    int
}

// BVHNode is a node of the hierarchy: either an internal node with two
// children, or a leaf holding triangles and the geometry references
// that contributed them.
type BVHNode struct {
	Box       core.AABB
	Left      *BVHNode
	Right     *BVHNode
	Triangles []*Triangle
	Sources   []GeometryRef
}

// IsLeaf reports whether the node stores triangles directly
func (n *BVHNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BVH is a bounding volume hierarchy over the triangles of a scene,
// built once before rendering and read-only afterwards.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a hierarchy over the triangles of the given geometries
// using recursive median splits along the longest axis.
func NewBVH(geometries []GeometryRef) *BVH {
	var prims []bvhPrimitive
	for _, ref := range geometries {
		for _, t := range ref.Geometry.Triangles() {
			prims = append(prims, bvhPrimitive{
				triangle: t,
				source:   ref,
				box:      t.BoundingBox(),
				index:    len(prims),
			})
		}
	}
	if len(prims) == 0 {
		return &BVH{}
	}
	return &BVH{Root: buildBVH(prims, 0)}
}

func buildBVH(prims []bvhPrimitive, depth int) *BVHNode {
	box := core.EmptyAABB()
	for i := range prims {
		box.Update(prims[i].box)
	}

	if len(prims) <= bvhLeafThreshold || depth > bvhMaxDepth {
		return newLeaf(box, prims)
	}

	axis := box.LongestAxis()
	sort.SliceStable(prims, func(i, j int) bool {
		ci := centroidAxis(prims[i].box, axis)
		cj := centroidAxis(prims[j].box, axis)
		if ci != cj {
			return ci < cj
		}
		return prims[i].index < prims[j].index
	})

	mid := len(prims) / 2
	return &BVHNode{
		Box:   box,
		Left:  buildBVH(prims[:mid], depth+1),
		Right: buildBVH(prims[mid:], depth+1),
	}
}

func newLeaf(box core.AABB, prims []bvhPrimitive) *BVHNode {
	// Restore insertion order so leaf scans keep the deterministic
	// closest-hit tie-break.
	sort.Slice(prims, func(i, j int) bool { return prims[i].index < prims[j].index })

	node := &BVHNode{Box: box, Triangles: make([]*Triangle, len(prims))}
	seen := make(map[*Geometry]bool)
	for i := range prims {
		node.Triangles[i] = prims[i].triangle
		if !seen[prims[i].source.Geometry] {
			seen[prims[i].source.Geometry] = true
			node.Sources = append(node.Sources, prims[i].source)
		}
	}
	return node
}

func centroidAxis(box core.AABB, axis int) float64 {
	c := box.Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

// Path traverses the hierarchy and records the closest intersection in
// the casted ray. The result matches a linear scan over all triangles,
// up to the deterministic insertion-order tie-break.
func (b *BVH) Path(cray *CastedRay) {
	if b.Root == nil {
		return
	}
	b.pathNode(b.Root, cray)
}

func (b *BVH) pathNode(node *BVHNode, cray *CastedRay) {
	entry, _, ok := node.Box.Intersect(cray.Ray, 0, cray.T)
	if !ok || entry > cray.T {
		return
	}

	if node.IsLeaf() {
		for _, t := range node.Triangles {
			cray.Intersect(t)
		}
		return
	}

	// Visit the nearer child first; skip the far child when the best
	// hit so far is already closer than its entry point.
	nearEntry, near := childEntry(node.Left, cray)
	farEntry, far := childEntry(node.Right, cray)
	if farEntry < nearEntry {
		near, far = far, near
		farEntry = nearEntry
	}

	if near != nil {
		b.pathNode(near, cray)
	}
	if far != nil && farEntry <= cray.T {
		b.pathNode(far, cray)
	}
}

func childEntry(node *BVHNode, cray *CastedRay) (float64, *BVHNode) {
	if node == nil {
		return math.Inf(1), nil
	}
	entry, _, ok := node.Box.Intersect(cray.Ray, 0, cray.T)
	if !ok {
		return math.Inf(1), nil
	}
	return entry, node
}
