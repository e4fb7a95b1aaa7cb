package core

import "math"

// AABB represents an axis-aligned bounding box. The empty box, built by
// EmptyAABB, contains nothing and unions as the identity; the zero value
// is not empty but the single point at the origin.
type AABB struct {
	Min   Vec3
	Max   Vec3
	empty bool
}

// EmptyAABB returns an empty bounding box
func EmptyAABB() AABB {
	return AABB{empty: true}
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB()
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.AddPoint(point)
	}
	return box
}

// IsEmpty returns true if the box contains nothing
func (aabb AABB) IsEmpty() bool {
	return aabb.empty
}

// AddPoint expands the box to contain the given point
func (aabb *AABB) AddPoint(p Vec3) {
	if aabb.empty {
		aabb.Min = p
		aabb.Max = p
		aabb.empty = false
		return
	}
	aabb.Min.X = math.Min(aabb.Min.X, p.X)
	aabb.Min.Y = math.Min(aabb.Min.Y, p.Y)
	aabb.Min.Z = math.Min(aabb.Min.Z, p.Z)
	aabb.Max.X = math.Max(aabb.Max.X, p.X)
	aabb.Max.Y = math.Max(aabb.Max.Y, p.Y)
	aabb.Max.Z = math.Max(aabb.Max.Z, p.Z)
}

// Update expands the box to the union with another box
func (aabb *AABB) Update(other AABB) {
	if other.empty {
		return
	}
	aabb.AddPoint(other.Min)
	aabb.AddPoint(other.Max)
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	result := aabb
	result.Update(other)
	return result
}

// Contains reports whether the point is inside the box (inclusive)
func (aabb AABB) Contains(p Vec3) bool {
	if aabb.empty {
		return false
	}
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// Intersect tests the ray against the box using the slab method.
// t0 and t1 bound the valid parameter interval. On a hit it returns the
// entry and exit parameters along the ray.
func (aabb AABB) Intersect(ray Ray, t0, t1 float64) (entry, exit float64, ok bool) {
	if aabb.empty {
		return 0, 0, false
	}

	entry = math.Inf(-1)
	exit = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var minVal, maxVal, origin, direction float64

		switch axis {
		case 0:
			minVal, maxVal = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			minVal, maxVal = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			minVal, maxVal = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < 1e-12 {
			// Ray parallel to this slab
			if origin < minVal || origin > maxVal {
				return 0, 0, false
			}
			continue
		}

		invDirection := 1.0 / direction
		tNear := (minVal - origin) * invDirection
		tFar := (maxVal - origin) * invDirection
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}

		entry = math.Max(entry, tNear)
		exit = math.Min(exit, tFar)
		if entry > exit {
			return 0, 0, false
		}
	}

	if exit < t0 || entry > t1 {
		return 0, 0, false
	}
	return entry, exit, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}
