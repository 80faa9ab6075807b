// Package integrator implements the recursive Monte Carlo radiance
// estimator: emission plus mixture-importance-sampled scattering against
// a designated set of "important" light-emitting hittables.
package integrator

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/pdf"
)

// minHitT guards against self-intersection (shadow/scatter acne): hits
// closer than this to the ray origin are ignored.
const minHitT = 1e-3

// RayColor recursively estimates the radiance arriving along ray r,
// combining emission, scattered attenuation, and mixture importance
// sampling against lights. depth bounds the recursion; depth 0 always
// yields black.
func RayColor(r core.Ray, depth int, world core.Hittable, lights core.PDFHittable, background core.Color, rng core.RNG) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	rec, hit := world.Hit(r, core.NewInterval(minHitT, math.Inf(1)), rng)
	if !hit {
		return background
	}

	emitted := rec.Material.Emitted(r, rec, rec.U, rec.V, rec.P)

	srec, scattered := rec.Material.Scatter(r, rec, rng)
	if !scattered {
		return emitted
	}

	if srec.SkipPDF {
		return emitted.Add(
			srec.Attenuation.MultiplyVec(
				RayColor(srec.DeterministicRay, depth-1, world, lights, background, rng),
			),
		)
	}

	var mixed core.PDF = srec.PDF
	if lights != nil {
		lightsPDF := pdf.NewHittable(lights, rec.P)
		mixed = pdf.NewMixture(lightsPDF, srec.PDF)
	}

	scatteredRay := core.NewRayAtTime(rec.P, mixed.Generate(rng), r.Time)
	pdfVal := mixed.Value(scatteredRay.Direction)

	if pdfVal <= 0 || math.IsNaN(pdfVal) || math.IsInf(pdfVal, 0) {
		return emitted
	}

	scatteringPDF := rec.Material.ScatteringPDF(r, rec, scatteredRay)
	sampleColor := RayColor(scatteredRay, depth-1, world, lights, background, rng)

	contribution := srec.Attenuation.MultiplyVec(sampleColor).Multiply(scatteringPDF / pdfVal)
	return emitted.Add(contribution)
}
