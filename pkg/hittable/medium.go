package hittable

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// ConstantMedium is a constant-density volumetric region: rays entering
// the boundary hittable have a random chance of scattering at a
// distance governed by the density, independent of the boundary's
// actual geometry beyond its two crossing points.
type ConstantMedium struct {
	Boundary      core.Hittable
	NegInvDensity float64
	PhaseFunction core.Material
}

// NewConstantMedium wraps boundary as a volume of the given density,
// scattering isotropically with the given albedo texture.
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: isotropicMaterial{albedo: albedo},
	}
}

// Hit intersects the boundary twice to find the ray's in-boundary span,
// then samples an exponentially distributed scattering distance; a miss
// means the sampled distance falls beyond the span.
func (m *ConstantMedium) Hit(r core.Ray, rayT core.Interval, rng core.RNG) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, core.Universe, rng)
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := m.Boundary.Hit(r, core.NewInterval(rec1.T+0.0001, math.Inf(1)), rng)
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}

	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.NegInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = rec1.T + hitDistance/rayLength
	rec.P = r.At(rec.T)
	rec.Normal = core.NewVec3(1, 0, 0) // arbitrary; isotropic scattering ignores it
	rec.FrontFace = true
	rec.Material = m.PhaseFunction
	return rec, true
}

// BoundingBox delegates to the boundary hittable.
func (m *ConstantMedium) BoundingBox() core.AABB { return m.Boundary.BoundingBox() }

// isotropicMaterial is the phase function used inside volumes; it is
// defined here (rather than imported from pkg/material) so that
// pkg/hittable does not depend on pkg/material.
type isotropicMaterial struct {
	core.BaseMaterial
	albedo core.Texture
}

func (i isotropicMaterial) Scatter(rayIn core.Ray, rec core.HitRecord, rng core.RNG) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.albedo.Value(rec.U, rec.V, rec.P),
		PDF:         uniformSpherePDF{},
	}, true
}

func (i isotropicMaterial) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

type uniformSpherePDF struct{}

func (uniformSpherePDF) Value(core.Vec3) float64 { return 1.0 / (4.0 * math.Pi) }
func (uniformSpherePDF) Generate(rng core.RNG) core.Vec3 {
	return core.RandomUnitVector(rng)
}
