package core

// minAABBPadding is the minimum width enforced along every axis so that
// axis-aligned geometry (quads, thin boxes) never produces a degenerate
// slab that the ray-AABB test could mishandle.
const minAABBPadding = 1e-4

// AABB is an axis-aligned bounding box expressed as one Interval per axis.
type AABB struct {
	X, Y, Z Interval
}

// NewAABBFromPoints builds the AABB spanning two corner points.
func NewAABBFromPoints(a, b Vec3) AABB {
	x := NewInterval(min(a.X, b.X), max(a.X, b.X))
	y := NewInterval(min(a.Y, b.Y), max(a.Y, b.Y))
	z := NewInterval(min(a.Z, b.Z), max(a.Z, b.Z))
	return NewAABBFromIntervals(x, y, z).padded()
}

// NewAABBFromIntervals builds the AABB from one interval per axis.
func NewAABBFromIntervals(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}.padded()
}

// UnionAABB returns the smallest AABB enclosing both a and b.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: UnionInterval(a.X, b.X),
		Y: UnionInterval(a.Y, b.Y),
		Z: UnionInterval(a.Z, b.Z),
	}
}

// padded enforces the minimum slab width on every axis.
func (b AABB) padded() AABB {
	if b.X.Size() < minAABBPadding {
		b.X = b.X.Expand(minAABBPadding)
	}
	if b.Y.Size() < minAABBPadding {
		b.Y = b.Y.Expand(minAABBPadding)
	}
	if b.Z.Size() < minAABBPadding {
		b.Z = b.Z.Expand(minAABBPadding)
	}
	return b
}

// Axis returns the interval for the given axis (0=X, 1=Y, 2=Z).
func (b AABB) Axis(n int) Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the axis with the
// greatest extent.
func (b AABB) LongestAxis() int {
	sx, sy, sz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}

// Translate returns the AABB shifted by the given vector.
func (b AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: b.X.Translate(offset.X),
		Y: b.Y.Translate(offset.Y),
		Z: b.Z.Translate(offset.Z),
	}
}

// Hit performs the slab test for ray-AABB intersection over [tMin, tMax].
// Rays parallel to an axis (direction component near zero) rely on the
// ±Inf limits IEEE-754 division by zero produces, which the subsequent
// min/max comparisons handle correctly without a special case.
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		invD := 1.0 / r.Direction.component(axis)
		origin := r.Origin.component(axis)

		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func (v Vec3) component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
