package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// List is a linear collection of primitives. Every query scans all items,
// so it serves small groups and as the brute-force reference for the BVH.
type List struct {
	items []Primitive
}

// NewList creates a list holding the given primitives
func NewList(items ...Primitive) *List {
	return &List{items: items}
}

// Add appends primitives to the list
func (l *List) Add(items ...Primitive) {
	l.items = append(l.items, items...)
}

// Items returns the primitives in insertion order
func (l *List) Items() []Primitive {
	return l.items
}

// Len returns the number of primitives in the list
func (l *List) Len() int {
	return len(l.items)
}

// Hit returns the nearest hit among all items
func (l *List) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler, rec *material.HitRecord) bool {
	hitAnything := false
	closest := tMax

	for _, item := range l.items {
		if item.Hit(ray, tMin, closest, sampler, rec) {
			hitAnything = true
			closest = rec.T
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all item boxes. An empty list, or one
// containing an unbounded item, has no box.
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.items) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, item := range l.items {
		itemBox, ok := item.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = itemBox
		} else {
			box = box.Union(itemBox)
		}
	}
	return box, true
}

func (*List) isPrimitive() {}
