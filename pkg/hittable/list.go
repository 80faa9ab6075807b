package hittable

import "github.com/mvega/pathtracer/pkg/core"

// HittableList is a linear collection of hittables, the simplest scene
// container: Hit does a full linear search tightening the candidate
// interval as closer hits are found.
type HittableList struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewHittableList creates an empty list.
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends object to the list and grows the cached bounding box.
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
	if len(l.Objects) == 1 {
		l.bbox = object.BoundingBox()
	} else {
		l.bbox = core.UnionAABB(l.bbox, object.BoundingBox())
	}
}

// Hit linearly searches the list, keeping the closest hit found so far.
func (l *HittableList) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if rec, ok := object.Hit(r, core.NewInterval(rayT.Min, closestSoFar), rng); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox returns the union of every member's bounding box.
func (l *HittableList) BoundingBox() core.AABB { return l.bbox }

// PDFValue averages the PDF values of every member that implements
// core.PDFHittable, weighting each equally regardless of its solid
// angle or area. This is a known source of variance when lights differ
// dramatically in size, left as documented in the source material.
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if pdfObj, ok := object.(core.PDFHittable); ok {
			sum += weight * pdfObj.PDFValue(origin, direction)
		}
	}
	return sum
}

// Random delegates to a uniformly chosen member.
func (l *HittableList) Random(origin core.Vec3, rng core.RNG) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	idx := rng.IntRange(0, len(l.Objects)-1)
	if pdfObj, ok := l.Objects[idx].(core.PDFHittable); ok {
		return pdfObj.Random(origin, rng)
	}
	return core.NewVec3(1, 0, 0)
}
