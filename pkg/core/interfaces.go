package core

// HitRecord carries everything known about a ray-hittable intersection.
type HitRecord struct {
	P         Point3   // point of intersection
	Normal    Vec3     // outward unit normal, flipped to face the incoming ray
	Material  Material // material of the hit object
	T         float64  // ray parameter at the hit
	U, V      float64  // surface UV in [0, 1]
	FrontFace bool     // true iff the ray approached from the outward-normal side
}

// SetFaceNormal stores Normal and FrontFace so that Normal always faces
// against the incoming ray, given the true outward-facing normal.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. Hit takes an explicit RNG
// because ConstantMedium must sample a random free-flight distance
// during intersection; every other hittable simply ignores it. Scene
// graphs are shared read-only across render workers, so the RNG -
// never the hittable itself - carries the per-thread mutable state.
type Hittable interface {
	Hit(r Ray, rayT Interval, rng RNG) (HitRecord, bool)
	BoundingBox() AABB
}

// PDFHittable is a Hittable that can additionally act as an importance
// sampling target for HittablePDF: it reports the solid angle it subtends
// from a point and can sample a direction toward itself.
type PDFHittable interface {
	Hittable
	PDFValue(origin, direction Vec3) float64
	Random(origin Vec3, rng RNG) Vec3
}

// ScatterRecord describes the result of Material.Scatter. When SkipPDF is
// true the integrator must follow DeterministicRay and multiply by
// Attenuation without any PDF weighting (specular/refractive bounces);
// otherwise it samples a direction from PDF (usually mixed with a lights
// PDF) and weights by the material's scattering PDF.
type ScatterRecord struct {
	Attenuation      Color
	PDF              PDF
	SkipPDF          bool
	DeterministicRay Ray
}

// PDF is a probability density over directions, expressed per solid angle.
type PDF interface {
	Value(direction Vec3) float64
	Generate(rng RNG) Vec3
}

// Material describes how a surface scatters and emits light.
type Material interface {
	// Scatter produces a ScatterRecord describing how the surface handles
	// an incoming ray, or (_, false) if the ray is absorbed.
	Scatter(rayIn Ray, rec HitRecord, rng RNG) (ScatterRecord, bool)

	// Emitted returns the light emitted at the hit point; the zero Color
	// for non-emissive materials.
	Emitted(rayIn Ray, rec HitRecord, u, v float64, p Point3) Color

	// ScatteringPDF returns the geometric BRDF factor for a given
	// scattered direction, used by the integrator together with the
	// mixture PDF's density. Materials whose Scatter always sets SkipPDF
	// never have this called.
	ScatteringPDF(rayIn Ray, rec HitRecord, scattered Ray) float64
}

// BaseMaterial supplies the common zero-value defaults (no emission, zero
// scattering PDF) so concrete materials only need to implement the methods
// where they differ from those defaults.
type BaseMaterial struct{}

// Emitted returns black; override in emissive materials.
func (BaseMaterial) Emitted(Ray, HitRecord, float64, float64, Point3) Color { return Color{} }

// ScatteringPDF returns 0; override in materials whose Scatter is non-specular.
func (BaseMaterial) ScatteringPDF(Ray, HitRecord, Ray) float64 { return 0 }

// Texture maps a surface point to a color.
type Texture interface {
	Value(u, v float64, p Point3) Color
}
