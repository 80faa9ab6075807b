package hittable

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Quad is a flat parallelogram defined by a corner and two edge vectors.
type Quad struct {
	Q, U, V  core.Point3
	Material core.Material
	normal   core.Vec3
	d        float64
	w        core.Vec3
	bbox     core.AABB
	area     float64
}

// NewQuad creates a quad from corner Q and edge vectors u, v.
func NewQuad(q, u, v core.Point3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()
	d := normal.Dot(q)
	w := n.Divide(n.Dot(n))

	bboxDiagonal1 := core.NewAABBFromPoints(q, q.Add(u).Add(v))
	bboxDiagonal2 := core.NewAABBFromPoints(q.Add(u), q.Add(v))
	bbox := core.UnionAABB(bboxDiagonal1, bboxDiagonal2)

	return &Quad{
		Q: q, U: u, V: v,
		Material: material,
		normal:   normal,
		d:        d,
		w:        w,
		bbox:     bbox,
		area:     n.Length(),
	}
}

// Hit intersects the ray with the quad's plane, then rejects the hit
// unless the barycentric coordinates (alpha, beta) both lie in [0, 1].
func (q *Quad) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !rayT.Contains(t) {
		return core.HitRecord{}, false
	}

	intersection := r.At(t)
	planarHitVec := intersection.Subtract(q.Q)
	alpha := q.w.Dot(planarHitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHitVec))

	if !isInterior(alpha, beta) {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.P = intersection
	rec.U, rec.V = alpha, beta
	rec.Material = q.Material
	rec.SetFaceNormal(r, q.normal)
	return rec, true
}

// isInterior reports whether (alpha, beta) fall in the closed unit
// square that defines the quad's interior.
func isInterior(alpha, beta float64) bool {
	unit := core.NewInterval(0, 1)
	return unit.Contains(alpha) && unit.Contains(beta)
}

// BoundingBox returns the AABB of the quad's four corners.
func (q *Quad) BoundingBox() core.AABB { return q.bbox }

// PDFValue returns the inverse solid angle the quad subtends from
// origin, approximated via the planar projected-area formula
// (distance squared over cosine times area).
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	// Quad.Hit never dereferences its RNG argument, so nil is safe here.
	rec, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.area)
}

// Random samples a direction toward a uniformly chosen point on the
// quad's surface.
func (q *Quad) Random(origin core.Vec3, rng core.RNG) core.Vec3 {
	p := q.Q.Add(q.U.Multiply(rng.Float64())).Add(q.V.Multiply(rng.Float64()))
	return p.Subtract(origin)
}
