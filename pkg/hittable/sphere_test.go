package hittable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvega/pathtracer/pkg/core"
)

func TestSphereHitFrontFace(t *testing.T) {
	s, err := NewSphere(core.NewVec3(0, 0, -2), 1, nil)
	require.NoError(t, err)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rec, ok := s.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	require.True(t, ok)

	assert.InDelta(t, 1.0, rec.T, 1e-9)
	assert.True(t, rec.FrontFace)
	assert.InDelta(t, 1.0, rec.Normal.Length(), 1e-9)
	assert.InDelta(t, 0, r.At(rec.T).Subtract(rec.P).Length(), 1e-9)
}

func TestSphereZeroRadiusNeverHits(t *testing.T) {
	s, err := NewSphere(core.NewVec3(0, 0, 0), 0, nil)
	require.NoError(t, err)

	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	_, ok := s.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	assert.False(t, ok)
}

func TestSphereNegativeRadiusRejected(t *testing.T) {
	_, err := NewSphere(core.NewVec3(0, 0, 0), -1, nil)
	assert.Error(t, err)
}

func TestMovingSphereInterpolatesCenter(t *testing.T) {
	c1 := core.NewVec3(0, 0, 0)
	c2 := core.NewVec3(4, 0, 0)
	s, err := NewMovingSphere(c1, c2, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, c1, s.centerAt(0))
	assert.Equal(t, c2, s.centerAt(1))
	assert.Equal(t, core.NewVec3(2, 0, 0), s.centerAt(0.5))
}

func TestSphereBoundingBoxContainsMovingSweep(t *testing.T) {
	s, err := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1, nil)
	require.NoError(t, err)

	box := s.BoundingBox()
	assert.True(t, box.X.Contains(-1))
	assert.True(t, box.X.Contains(11))
}

func TestSpherePDFValuePositiveWhenVisible(t *testing.T) {
	s, err := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	require.NoError(t, err)

	v := s.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	assert.Greater(t, v, 0.0)
}

func TestSpherePDFValueZeroWhenMissed(t *testing.T) {
	s, err := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	require.NoError(t, err)

	v := s.PDFValue(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	assert.Equal(t, 0.0, v)
}

func TestSphereRandomReturnsDirectionTowardSphere(t *testing.T) {
	s, err := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	require.NoError(t, err)

	rng := core.NewStdRNG(11)
	origin := core.NewVec3(0, 0, 0)
	for i := 0; i < 200; i++ {
		dir := s.Random(origin, rng)
		_, ok := s.Hit(core.NewRay(origin, dir), core.NewInterval(0.001, math.Inf(1)), nil)
		assert.True(t, ok)
	}
}
