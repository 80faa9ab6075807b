package material

import "github.com/mvega/pathtracer/pkg/core"

// DiffuseLight emits its texture's color and never scatters.
type DiffuseLight struct {
	core.BaseMaterial
	Emit core.Texture
}

// NewDiffuseLight creates an emitter from a texture (typically solid).
func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// NewDiffuseLightColor is a convenience constructor for a solid-color
// emitter.
func NewDiffuseLightColor(c core.Color) *DiffuseLight {
	return &DiffuseLight{Emit: solidColor{c}}
}

// Scatter always absorbs: lights don't bounce rays.
func (d *DiffuseLight) Scatter(rayIn core.Ray, rec core.HitRecord, rng core.RNG) (core.ScatterRecord, bool) {
	return core.ScatterRecord{}, false
}

// Emitted returns the light's texture value, but only on the front face;
// the back of a one-sided area light emits nothing.
func (d *DiffuseLight) Emitted(rayIn core.Ray, rec core.HitRecord, u, v float64, p core.Point3) core.Color {
	if !rec.FrontFace {
		return core.Color{}
	}
	return d.Emit.Value(u, v, p)
}

// solidColor is a tiny core.Texture used so DiffuseLight doesn't need to
// import the texture package just for a constant color.
type solidColor struct{ c core.Color }

func (s solidColor) Value(u, v float64, p core.Point3) core.Color { return s.c }
