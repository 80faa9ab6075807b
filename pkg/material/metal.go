package material

import "github.com/mvega/pathtracer/pkg/core"

// Metal is a specular reflector with an optional fuzz factor that
// perturbs the perfect reflection direction.
type Metal struct {
	core.BaseMaterial
	Albedo core.Color
	Fuzz   float64
}

// NewMetal creates a Metal material; fuzz is clamped to [0, 1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter deterministically reflects the incoming ray (skipping PDF
// weighting) and perturbs the result by Fuzz times a random unit vector,
// renormalizing the perturbed direction.
func (m *Metal) Scatter(rayIn core.Ray, rec core.HitRecord, rng core.RNG) (core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Unit().Reflect(rec.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(rng).Multiply(m.Fuzz)).Unit()
	}

	scattered := core.NewRayAtTime(rec.P, reflected, rayIn.Time)

	return core.ScatterRecord{
		Attenuation:      m.Albedo,
		SkipPDF:          true,
		DeterministicRay: scattered,
	}, true
}
