// Package pdf implements the probability-density-function contract used
// for mixture importance sampling: uniform sphere, cosine-hemisphere,
// hittable-directed, and 50/50 mixture densities.
package pdf

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Sphere is the uniform density over the unit sphere, 1/(4*pi), used by
// the Isotropic volume material.
type Sphere struct{}

// NewSphere creates a uniform-sphere PDF.
func NewSphere() Sphere { return Sphere{} }

// Value returns 1/(4*pi) regardless of direction.
func (Sphere) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate returns a uniformly distributed direction on the unit sphere.
func (Sphere) Generate(rng core.RNG) core.Vec3 {
	return core.RandomUnitVector(rng)
}
