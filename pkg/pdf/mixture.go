package pdf

import "github.com/mvega/pathtracer/pkg/core"

// Mixture is a 50/50 blend of two PDFs, the mechanism behind multiple
// importance sampling between a material's scatter lobe and the scene's
// lights. When P1 is nil the mixture falls through to P0 unmixed.
type Mixture struct {
	P0, P1 core.PDF
}

// NewMixture builds a 50/50 mixture of p0 and p1. p1 may be nil.
func NewMixture(p0, p1 core.PDF) Mixture {
	return Mixture{P0: p0, P1: p1}
}

// Value returns the average density of the two component PDFs, or just
// P0's when P1 is absent.
func (m Mixture) Value(direction core.Vec3) float64 {
	if m.P1 == nil {
		return m.P0.Value(direction)
	}
	return 0.5*m.P0.Value(direction) + 0.5*m.P1.Value(direction)
}

// Generate flips a fair coin to decide which component PDF to sample
// from, or always samples P0 when P1 is absent.
func (m Mixture) Generate(rng core.RNG) core.Vec3 {
	if m.P1 == nil || rng.Float64() < 0.5 {
		return m.P0.Generate(rng)
	}
	return m.P1.Generate(rng)
}
