package texture

import (
	"math"

	"github.com/mvega/pathtracer/pkg/core"
)

const perlinPointCount = 256

// perlin implements the classic gradient-noise generator: a table of 256
// random unit vectors indexed through three independently shuffled
// permutation tables (one per axis), combined by a Hermite-smoothed
// trilinear interpolation of the dot products between the gradient and
// the lattice-to-sample offset.
type perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

func newPerlin(rng core.RNG) *perlin {
	p := &perlin{}
	for i := range p.randVec {
		p.randVec[i] = core.NewVec3(
			2*rng.Float64()-1,
			2*rng.Float64()-1,
			2*rng.Float64()-1,
		).Unit()
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng core.RNG) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		target := rng.IntRange(0, i)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// noise returns the smoothed gradient noise at p, in roughly [-1, 1].
func (pn *perlin) noise(p core.Point3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				accum += (float64(i)*uu + (1-float64(i))*(1-uu)) *
					(float64(j)*vv + (1-float64(j))*(1-vv)) *
					(float64(k)*ww + (1-float64(k))*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turb returns the turbulence (weighted sum of absolute noise at
// doubling frequencies) at p, bounded to [0, 2 - 2^(1-depth)] and so
// within [0, 2] for any depth >= 1.
func (pn *perlin) turb(p core.Point3, depth int) float64 {
	accum := 0.0
	tempP := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(pn.noise(tempP))
		weight *= 0.5
		tempP = tempP.Multiply(2)
	}

	return accum
}

// Noise is a Perlin marble-like texture: a sinusoid of z perturbed by
// turbulence, scaled spatially.
type Noise struct {
	noise *perlin
	Scale float64
}

// NewNoise creates a Perlin noise texture with the given spatial scale,
// seeding its permutation tables from rng.
func NewNoise(scale float64, rng core.RNG) *Noise {
	return &Noise{noise: newPerlin(rng), Scale: scale}
}

// Value returns a grayscale marble-like pattern independent of uv.
func (n *Noise) Value(u, v float64, p core.Point3) core.Color {
	val := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.noise.turb(p, 7)))
	return core.NewVec3(val, val, val)
}
