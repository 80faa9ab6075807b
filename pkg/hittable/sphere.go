// Package hittable implements the polymorphic scene geometry: spheres,
// quads, the box helper, transform decorators, constant-density media,
// lists, and the BVH acceleration structure.
package hittable

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Sphere is a stationary or linearly moving sphere. A moving sphere
// stores two centers and interpolates between them by ray time; a
// stationary sphere has Center1 == Center2.
type Sphere struct {
	Center1, Center2 core.Point3
	Radius           float64
	Material         core.Material
	moving           bool
	bbox             core.AABB
}

// NewSphere creates a stationary sphere. It returns an error if radius
// is negative, a programmer error caught at construction.
func NewSphere(center core.Point3, radius float64, material core.Material) (*Sphere, error) {
	return NewMovingSphere(center, center, radius, material)
}

// NewMovingSphere creates a sphere whose center moves linearly from
// center1 at time 0 to center2 at time 1.
func NewMovingSphere(center1, center2 core.Point3, radius float64, material core.Material) (*Sphere, error) {
	if radius < 0 {
		return nil, core.NewConfigError("radius", "must be non-negative")
	}
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	bbox := box1
	if center1 != center2 {
		box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
		bbox = core.UnionAABB(box1, box2)
	}
	return &Sphere{
		Center1:  center1,
		Center2:  center2,
		Radius:   radius,
		Material: material,
		moving:   center1 != center2,
		bbox:     bbox,
	}, nil
}

// centerAt returns the sphere's center at the given ray time.
func (s *Sphere) centerAt(time float64) core.Point3 {
	if !s.moving {
		return s.Center1
	}
	return s.Center1.Add(s.Center2.Subtract(s.Center1).Multiply(time))
}

// sphereUV computes the (u, v) spherical coordinates of a point p on
// the unit sphere centered at the origin.
func sphereUV(p core.Point3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// Hit implements the quadratic sphere intersection, selecting the
// nearest root within rayT.
func (s *Sphere) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	center := s.centerAt(r.Time)
	oc := center.Subtract(r.Origin)
	a := r.Direction.LengthSquared()
	h := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	var rec core.HitRecord
	rec.T = root
	rec.P = r.At(rec.T)
	outwardNormal := rec.P.Subtract(center).Divide(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = s.Material
	return rec, true
}

// BoundingBox returns the sphere's (possibly motion-swept) AABB.
func (s *Sphere) BoundingBox() core.AABB { return s.bbox }

// PDFValue returns the inverse solid angle the sphere subtends from
// origin, used to importance-sample the sphere as a light.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	// Sphere.Hit never dereferences its RNG argument, so nil is safe here.
	rec, ok := s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distSq := s.Center1.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	_ = rec
	if solidAngle <= 0 {
		return 0
	}
	return 1 / solidAngle
}

// Random samples a direction from origin uniformly over the solid angle
// the sphere subtends, via cone sampling about the center direction.
func (s *Sphere) Random(origin core.Vec3, rng core.RNG) core.Vec3 {
	direction := s.Center1.Subtract(origin)
	distSq := direction.LengthSquared()
	basis := core.NewONBFromW(direction)
	return basis.Transform(randomToSphere(s.Radius, distSq, rng))
}

// randomToSphere samples a direction, in a local frame whose Z axis
// points at the sphere center, uniformly over the cone subtending the
// sphere of the given radius at squared distance distSq.
func randomToSphere(radius, distSq float64, rng core.RNG) core.Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	z := 1 + r2*(math.Sqrt(1-radius*radius/distSq)-1)

	phi := 2 * math.Pi * r1
	sqrtTerm := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sqrtTerm
	y := math.Sin(phi) * sqrtTerm

	return core.NewVec3(x, y, z)
}
