package hittable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvega/pathtracer/pkg/core"
)

func TestConstantMediumHitsInsideBoundary(t *testing.T) {
	boundary, err := NewSphere(core.NewVec3(0, 0, 0), 5, nil)
	require.NoError(t, err)

	medium := NewConstantMedium(boundary, 1.0, nopTexture{})

	hits := 0
	rng := core.NewStdRNG(42)
	for i := 0; i < 200; i++ {
		r := core.NewRay(core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1))
		rec, ok := medium.Hit(r, core.NewInterval(0.001, math.Inf(1)), rng)
		if ok {
			hits++
			assert.True(t, rec.FrontFace)
			assert.NotNil(t, rec.Material)
		}
	}
	assert.Greater(t, hits, 0)
}

func TestConstantMediumMissesOutsideBoundary(t *testing.T) {
	boundary, err := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	require.NoError(t, err)
	medium := NewConstantMedium(boundary, 1.0, nopTexture{})

	r := core.NewRay(core.NewVec3(10, 10, -10), core.NewVec3(0, 0, 1))
	_, ok := medium.Hit(r, core.NewInterval(0.001, math.Inf(1)), core.NewStdRNG(1))
	assert.False(t, ok)
}

type nopTexture struct{}

func (nopTexture) Value(u, v float64, p core.Point3) core.Color { return core.NewVec3(1, 1, 1) }
