package texture

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

// Checker is a 3-axis checkerboard pattern alternating between two
// sub-textures every scale units along X, Y, and Z.
type Checker struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewChecker creates a checker texture from two caller-supplied
// sub-textures, alternating every `scale` units.
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor wrapping two solid colors.
func NewCheckerColors(scale float64, evenColor, oddColor core.Color) *Checker {
	return NewChecker(scale, NewSolid(evenColor), NewSolid(oddColor))
}

// Value returns the even or odd sub-texture's value depending on the
// parity of floor(x/s) + floor(y/s) + floor(z/s).
func (c *Checker) Value(u, v float64, p core.Point3) core.Color {
	x := int(math.Floor(c.InvScale * p.X))
	y := int(math.Floor(c.InvScale * p.Y))
	z := int(math.Floor(c.InvScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
