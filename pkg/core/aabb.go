package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates the box spanned by two opposite corners, in any order
func NewAABB(a, b Vec3) AABB {
	return AABB{Min: MinVec(a, b), Max: MaxVec(a, b)}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = MinVec(min, point)
		max = MaxVec(max, point)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// A ray whose direction has an exact zero component runs parallel to that
// slab: it stays inside the slab for every t when its origin is within
// [min, max] on that axis and never enters it otherwise.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		direction := ray.Direction[axis]

		if direction == 0 {
			if origin < aabb.Min[axis] || origin > aabb.Max[axis] {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (aabb.Min[axis] - origin) * invDirection
		t1 := (aabb.Max[axis] - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: MinVec(aabb.Min, other.Min),
		Max: MaxVec(aabb.Max, other.Max),
	}
}

// Pad grows any axis thinner than delta to exactly delta, keeping it centred.
// Flat primitives (rectangles) need a non-zero slab to be hit reliably.
func (aabb AABB) Pad(delta float64) AABB {
	padded := aabb
	for axis := 0; axis < 3; axis++ {
		if aabb.Max[axis]-aabb.Min[axis] < delta {
			mid := 0.5 * (aabb.Min[axis] + aabb.Max[axis])
			padded.Min[axis] = mid - delta/2
			padded.Max[axis] = mid + delta/2
		}
	}
	return padded
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Contains reports whether other lies entirely within this box
func (aabb AABB) Contains(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if other.Min[axis] < aabb.Min[axis] || other.Max[axis] > aabb.Max[axis] {
			return false
		}
	}
	return true
}

// Centroid returns the center point of the AABB
func (aabb AABB) Centroid() Vec3 {
	return aabb.Min.Add(aabb.Max).Mul(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Sub(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size[0] > size[1] && size[0] > size[2] {
		return 0
	}
	if size[1] > size[2] {
		return 1
	}
	return 2
}

// IsValid returns true if min <= max on every axis and no coordinate is NaN
func (aabb AABB) IsValid() bool {
	for axis := 0; axis < 3; axis++ {
		if math.IsNaN(aabb.Min[axis]) || math.IsNaN(aabb.Max[axis]) {
			return false
		}
		if aabb.Min[axis] > aabb.Max[axis] {
			return false
		}
	}
	return true
}
