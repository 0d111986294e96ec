package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// BuildError reports a primitive the BVH could not be built over
type BuildError struct {
	Index     int    // Position of the primitive in the input list
	Primitive string // Describe() of the primitive
	Stage     string // Build step that failed
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("bvh %s: primitive %d (%s): %v", e.Stage, e.Index, e.Primitive, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// childKind tells what a node's child slot refers to
type childKind uint8

const (
	childNone childKind = iota
	childLeaf           // index into the primitive arena
	childNode           // index into the node slice
)

type bvhChild struct {
	kind  childKind
	index int
}

// bvhNode has a left child, an optional right child and a box spanning both
type bvhNode struct {
	box   core.AABB
	left  bvhChild
	right bvhChild
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Primitives live in an arena and nodes refer to them by index; the whole
// structure is immutable after NewBVH and safe for concurrent traversal.
type BVH struct {
	prims []Primitive
	nodes []bvhNode
	boxes []core.AABB // Box of each primitive over the build interval
}

// NewBVH constructs a BVH over prims for the shutter interval [time0, time1].
// Every primitive must have a bounding box over that interval.
func NewBVH(prims []Primitive, time0, time1 float64) (*BVH, error) {
	if len(prims) == 0 {
		return nil, ErrEmptyPrimitiveList
	}

	bvh := &BVH{
		prims: make([]Primitive, len(prims)),
		nodes: make([]bvhNode, 0, 2*len(prims)),
		boxes: make([]core.AABB, len(prims)),
	}
	// The caller's slice is left untouched
	copy(bvh.prims, prims)

	order := make([]int, len(prims))
	for i, prim := range bvh.prims {
		box, ok := prim.BoundingBox(time0, time1)
		if !ok || !box.IsValid() {
			return nil, &BuildError{
				Index:     i,
				Primitive: Describe(prim),
				Stage:     "bounding box",
				Err:       ErrNoBoundingBox,
			}
		}
		bvh.boxes[i] = box
		order[i] = i
	}

	bvh.build(order)
	return bvh, nil
}

// build partitions items recursively and returns the index of the subtree's root node
func (bvh *BVH) build(items []int) int {
	nodeIndex := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{})

	var node bvhNode
	switch len(items) {
	case 1:
		node.left = bvhChild{kind: childLeaf, index: items[0]}
		node.box = bvh.boxes[items[0]]
	case 2:
		node.left = bvhChild{kind: childLeaf, index: items[0]}
		node.right = bvhChild{kind: childLeaf, index: items[1]}
		node.box = bvh.boxes[items[0]].Union(bvh.boxes[items[1]])
	default:
		bvh.sortItems(items)
		mid := len(items) / 2
		left := bvh.build(items[:mid])
		right := bvh.build(items[mid:])
		node.left = bvhChild{kind: childNode, index: left}
		node.right = bvhChild{kind: childNode, index: right}
		node.box = bvh.nodes[left].box.Union(bvh.nodes[right].box)
	}

	bvh.nodes[nodeIndex] = node
	return nodeIndex
}

// sortItems orders items along the X axis by box minimum, breaking ties on the maximum
func (bvh *BVH) sortItems(items []int) {
	const axis = 0
	sort.SliceStable(items, func(i, j int) bool {
		a, b := bvh.boxes[items[i]], bvh.boxes[items[j]]
		if a.Min[axis] != b.Min[axis] {
			return a.Min[axis] < b.Min[axis]
		}
		return a.Max[axis] < b.Max[axis]
	})
}

// Hit returns the nearest hit among all primitives in (tMin, tMax)
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	return bvh.hitNode(0, ray, tMin, tMax, sampler, rec)
}

func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, tMin, tMax) {
		return false
	}

	hitLeft := bvh.hitChild(node.left, ray, tMin, tMax, sampler, rec)
	if hitLeft {
		// The right subtree only matters if it has something nearer
		tMax = rec.T
	}
	hitRight := bvh.hitChild(node.right, ray, tMin, tMax, sampler, rec)

	return hitLeft || hitRight
}

func (bvh *BVH) hitChild(child bvhChild, ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	switch child.kind {
	case childLeaf:
		return bvh.prims[child.index].Hit(ray, tMin, tMax, sampler, rec)
	case childNode:
		return bvh.hitNode(child.index, ray, tMin, tMax, sampler, rec)
	default:
		return false
	}
}

// BoundingBox returns the root box. It was computed for the build interval
// and is returned for any requested interval.
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return bvh.nodes[0].box, true
}

// Len returns the number of primitives in the hierarchy
func (bvh *BVH) Len() int {
	return len(bvh.prims)
}

// Primitives returns the primitive arena
func (bvh *BVH) Primitives() []Primitive {
	return bvh.prims
}

func (*BVH) isPrimitive() {}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes      int     // Interior nodes
	Leaves     int     // Leaf slots, equal to the primitive count
	MaxDepth   int     // Depth of the deepest leaf, the root being depth 1
	AvgDepth   float64 // Mean leaf depth
	Primitives int
}

// Stats walks the hierarchy and returns its shape
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Nodes: len(bvh.nodes), Primitives: len(bvh.prims)}
	var depthSum int
	bvh.collectStats(0, 1, &stats, &depthSum)
	if stats.Leaves > 0 {
		stats.AvgDepth = float64(depthSum) / float64(stats.Leaves)
	}
	return stats
}

// Depth returns the depth of the deepest leaf
func (bvh *BVH) Depth() int {
	return bvh.Stats().MaxDepth
}

func (bvh *BVH) collectStats(index, depth int, stats *BVHStats, depthSum *int) {
	node := bvh.nodes[index]
	for _, child := range [2]bvhChild{node.left, node.right} {
		switch child.kind {
		case childLeaf:
			stats.Leaves++
			*depthSum += depth
			if depth > stats.MaxDepth {
				stats.MaxDepth = depth
			}
		case childNode:
			bvh.collectStats(child.index, depth+1, stats, depthSum)
		}
	}
}
