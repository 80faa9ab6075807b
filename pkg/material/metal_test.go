package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvega/pathtracer/pkg/core"
)

func TestMetalScatterZeroFuzzIsPerfectReflection(t *testing.T) {
	m := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	rayIn := core.Ray{Direction: core.NewVec3(1, -1, 0)}
	rec := core.HitRecord{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	srec, ok := m.Scatter(rayIn, rec, core.NewStdRNG(1))
	assert.True(t, ok)
	assert.True(t, srec.SkipPDF)

	expected := rayIn.Direction.Unit().Reflect(rec.Normal)
	assert.InDelta(t, expected.X, srec.DeterministicRay.Direction.X, 1e-9)
	assert.InDelta(t, expected.Y, srec.DeterministicRay.Direction.Y, 1e-9)
	assert.InDelta(t, expected.Z, srec.DeterministicRay.Direction.Z, 1e-9)
}

func TestMetalFuzzClampedToUnitRange(t *testing.T) {
	assert.Equal(t, 1.0, NewMetal(core.Color{}, 5).Fuzz)
	assert.Equal(t, 0.0, NewMetal(core.Color{}, -5).Fuzz)
}

func TestMetalFuzzPerturbsButStaysUnit(t *testing.T) {
	m := NewMetal(core.NewVec3(1, 1, 1), 0.5)
	rayIn := core.Ray{Direction: core.NewVec3(0, -1, 0)}
	rec := core.HitRecord{Normal: core.NewVec3(0, 1, 0)}

	rng := core.NewStdRNG(3)
	for i := 0; i < 20; i++ {
		srec, ok := m.Scatter(rayIn, rec, rng)
		assert.True(t, ok)
		assert.InDelta(t, 1.0, srec.DeterministicRay.Direction.Length(), 1e-9)
	}
}
