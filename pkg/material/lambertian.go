// Package material implements the polymorphic scattering/emission
// contract: Lambertian, Metal, Dielectric, DiffuseLight, and Isotropic.
package material

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/pdf"
)

// Lambertian is a perfectly diffuse material. Its scatter direction is
// drawn from a cosine-hemisphere PDF about the surface normal so that the
// integrator can mix it with light-importance sampling.
type Lambertian struct {
	core.BaseMaterial
	Albedo core.Texture
}

// NewLambertian creates a Lambertian material from a texture.
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns a non-specular ScatterRecord whose PDF is a cosine
// lobe about the normal; the integrator mixes it with light sampling.
func (l *Lambertian) Scatter(rayIn core.Ray, rec core.HitRecord, rng core.RNG) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.P),
		PDF:         pdf.NewCosine(rec.Normal),
	}, true
}

// ScatteringPDF returns cos(theta)/pi, the density paired with the
// cosine-hemisphere scatter direction.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	cosTheta := rec.Normal.Dot(scattered.Direction.Unit())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
