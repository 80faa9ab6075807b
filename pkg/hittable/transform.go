package hittable

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Translate wraps a Hittable and offsets it in world space, by
// transforming incoming rays into object space on entry and shifting
// the hit point back into world space on exit.
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object, shifted by offset.
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit transforms the ray into object space, delegates, and shifts the
// resulting hit point back into world space.
func (t *Translate) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(r.Origin.Subtract(t.Offset), r.Direction, r.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT, rng)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.P = rec.P.Add(t.Offset)
	return rec, true
}

// BoundingBox returns the child's bounding box shifted by Offset.
func (t *Translate) BoundingBox() core.AABB { return t.bbox }

// RotateY wraps a Hittable and rotates it about the Y axis by a fixed
// angle, counter-rotating rays on entry and hit points/normals on exit.
type RotateY struct {
	Object         core.Hittable
	sinTheta       float64
	cosTheta       float64
	bbox           core.AABB
}

// NewRotateY wraps object, rotated by angleDegrees about the Y axis.
func NewRotateY(object core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)
	bbox := object.BoundingBox()

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.X.Max + float64(1-i)*bbox.X.Min
				y := float64(j)*bbox.Y.Max + float64(1-j)*bbox.Y.Min
				z := float64(k)*bbox.Z.Max + float64(1-k)*bbox.Z.Min

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				tester := core.NewVec3(newX, y, newZ)
				min = core.NewVec3(math.Min(min.X, tester.X), math.Min(min.Y, tester.Y), math.Min(min.Z, tester.Z))
				max = core.NewVec3(math.Max(max.X, tester.X), math.Max(max.Y, tester.Y), math.Max(max.Z, tester.Z))
			}
		}
	}

	return &RotateY{
		Object:   object,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABBFromPoints(min, max),
	}
}

// Hit rotates the ray into object space, delegates, then counter-rotates
// the resulting hit point and normal back into world space.
func (rt *RotateY) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	origin := core.NewVec3(
		rt.cosTheta*r.Origin.X-rt.sinTheta*r.Origin.Z,
		r.Origin.Y,
		rt.sinTheta*r.Origin.X+rt.cosTheta*r.Origin.Z,
	)
	direction := core.NewVec3(
		rt.cosTheta*r.Direction.X-rt.sinTheta*r.Direction.Z,
		r.Direction.Y,
		rt.sinTheta*r.Direction.X+rt.cosTheta*r.Direction.Z,
	)
	rotatedRay := core.NewRayAtTime(origin, direction, r.Time)

	rec, ok := rt.Object.Hit(rotatedRay, rayT, rng)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.P = core.NewVec3(
		rt.cosTheta*rec.P.X+rt.sinTheta*rec.P.Z,
		rec.P.Y,
		-rt.sinTheta*rec.P.X+rt.cosTheta*rec.P.Z,
	)
	rec.Normal = core.NewVec3(
		rt.cosTheta*rec.Normal.X+rt.sinTheta*rec.Normal.Z,
		rec.Normal.Y,
		-rt.sinTheta*rec.Normal.X+rt.cosTheta*rec.Normal.Z,
	)

	return rec, true
}

// BoundingBox returns the AABB of the eight rotated corners of the
// child's bounding box.
func (rt *RotateY) BoundingBox() core.AABB { return rt.bbox }
