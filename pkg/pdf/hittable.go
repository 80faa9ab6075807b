package pdf

import "github.com/mvega/pathtracer/pkg/core"

// Hittable directs importance sampling toward a set of lights: it
// delegates Value/Generate to a PDFHittable target (typically a
// HittableList of emitters) as seen from a fixed origin.
type Hittable struct {
	Objects core.PDFHittable
	Origin  core.Vec3
}

// NewHittable builds a PDF that samples directions toward objects, as
// seen from origin.
func NewHittable(objects core.PDFHittable, origin core.Vec3) Hittable {
	return Hittable{Objects: objects, Origin: origin}
}

// Value delegates to the target's PDFValue.
func (h Hittable) Value(direction core.Vec3) float64 {
	return h.Objects.PDFValue(h.Origin, direction)
}

// Generate delegates to the target's Random.
func (h Hittable) Generate(rng core.RNG) core.Vec3 {
	return h.Objects.Random(h.Origin, rng)
}
