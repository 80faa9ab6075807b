package material

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/pdf"
)

// Isotropic is the phase function used by constant-density volumes: it
// scatters uniformly in all directions.
type Isotropic struct {
	core.BaseMaterial
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function from a texture.
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter samples a uniform direction over the sphere.
func (i *Isotropic) Scatter(rayIn core.Ray, rec core.HitRecord, rng core.RNG) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Attenuation: i.Albedo.Value(rec.U, rec.V, rec.P),
		PDF:         pdf.NewSphere(),
	}, true
}

// ScatteringPDF returns the uniform-sphere density 1/(4*pi).
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, rec core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
