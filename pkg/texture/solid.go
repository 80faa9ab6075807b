// Package texture implements the polymorphic value(u,v,p) texture
// contract: solid colors, a 3-axis checker pattern, bitmap sampling
// through an external pixel-fetch interface, and Perlin/turbulence noise.
package texture

import "github.com/mvega/pathtracer/pkg/core"

// Solid is a texture returning a single constant color everywhere.
type Solid struct {
	Color core.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

// Value returns the constant color regardless of uv or p.
func (s *Solid) Value(u, v float64, p core.Point3) core.Color {
	return s.Color
}
