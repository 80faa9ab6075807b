package hittable

import (
	"sort"

	"github.com/mvega/pathtracer/pkg/core"
)

// BVHNode is a binary bounding-volume hierarchy node. Construction
// follows the simple sorted-median split (longest axis, sort by min
// coordinate, split at the midpoint) rather than a binned SAH or a
// fixed leaf-size threshold: it's the invariant-preserving form the
// spec mandates, trading some tree balance for a construction any
// reader can verify by hand.
type BVHNode struct {
	Left, Right core.Hittable
	bbox        core.AABB
}

// NewBVH builds a BVH over a slice of hittables. The slice is copied
// before sorting so callers retain their own ordering. An empty slice
// yields a node whose Hit always reports a miss.
func NewBVH(objects []core.Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{}
	}
	working := make([]core.Hittable, len(objects))
	copy(working, objects)
	return buildBVH(working)
}

func buildBVH(objects []core.Hittable) *BVHNode {
	bbox := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		bbox = core.UnionAABB(bbox, obj.BoundingBox())
	}
	axis := bbox.LongestAxis()

	node := &BVHNode{bbox: bbox}

	switch len(objects) {
	case 1:
		// Sentinel duplication: both children reference the same leaf
		// so traversal code never needs to special-case a single child.
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		sort.Slice(objects, func(i, j int) bool {
			return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	return node
}

// Hit tests the slab first; on a hit it recurses left with the full
// interval, tightens t_max to the left hit's T, then recurses right.
func (n *BVHNode) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	if n.Left == nil {
		return core.HitRecord{}, false
	}
	if !n.bbox.Hit(r, rayT.Min, rayT.Max) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := n.Left.Hit(r, rayT, rng)
	searchMax := rayT.Max
	if hitLeft {
		searchMax = leftRec.T
	}

	rightRec, hitRight := n.Right.Hit(r, core.NewInterval(rayT.Min, searchMax), rng)
	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return core.HitRecord{}, false
}

// BoundingBox returns the union of every descendant's bounding box.
func (n *BVHNode) BoundingBox() core.AABB { return n.bbox }
