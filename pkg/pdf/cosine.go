package pdf

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Cosine is the cosine-weighted hemisphere density about a surface
// normal, the scatter PDF paired with every Lambertian bounce.
type Cosine struct {
	basis core.ONB
}

// NewCosine builds a cosine-hemisphere PDF oriented about the unit
// normal w.
func NewCosine(w core.Vec3) Cosine {
	return Cosine{basis: core.NewONBFromW(w)}
}

// Value returns max(0, cos(theta))/pi where theta is measured from the
// basis's W axis.
func (c Cosine) Value(direction core.Vec3) float64 {
	cosTheta := direction.Unit().Dot(c.basis.W)
	return math.Max(0, cosTheta) / math.Pi
}

// Generate samples a cosine-weighted direction in the local frame and
// transforms it into world space.
func (c Cosine) Generate(rng core.RNG) core.Vec3 {
	return core.RandomCosineDirection(c.basis.W, rng)
}
