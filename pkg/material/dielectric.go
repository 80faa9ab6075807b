package material

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that either
// refracts or reflects the incoming ray, chosen by Schlick's
// approximation to the Fresnel reflectance plus the total-internal-
// -reflection cutoff.
type Dielectric struct {
	core.BaseMaterial
	RefractionIndex float64
}

// NewDielectric creates a Dielectric with the given index of refraction
// (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter deterministically reflects or refracts the ray (skipping PDF
// weighting); attenuation is always (1,1,1) since clear glass absorbs no
// color.
func (d *Dielectric) Scatter(rayIn core.Ray, rec core.HitRecord, rng core.RNG) (core.ScatterRecord, bool) {
	eta := d.RefractionIndex
	if rec.FrontFace {
		eta = 1.0 / d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, eta) > rng.Float64() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, eta)
	}

	return core.ScatterRecord{
		Attenuation:      core.NewVec3(1, 1, 1),
		SkipPDF:          true,
		DeterministicRay: core.NewRayAtTime(rec.P, direction, rayIn.Time),
	}, true
}

// Reflectance computes Schlick's approximation to the Fresnel
// reflectance for unpolarized light.
func Reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
