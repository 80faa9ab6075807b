package hittable

import "github.com/mvega/pathtracer/pkg/core"

// NewBox builds the six outward-facing quads of an axis-aligned box
// spanning the two opposite corners a and b, returned as a HittableList.
func NewBox(a, b core.Point3, material core.Material) *HittableList {
	sides := NewHittableList()

	minP := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	maxP := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, material))  // front
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, material)) // right
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, material)) // back
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, material))  // left
	sides.Add(NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), material)) // top
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, material))  // bottom

	return sides
}
