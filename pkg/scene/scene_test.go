package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvega/pathtracer/pkg/core"
)

func TestNewCornellBoxBuildsWorldAndLight(t *testing.T) {
	built := NewCornellBox()
	assert.NotNil(t, built.World)
	assert.Equal(t, 1, len(built.Lights.Objects))
	assert.Equal(t, 400, built.CameraConfig.ImageWidth)

	bbox := built.World.BoundingBox()
	assert.False(t, bbox.X.Size() < 0)
}

func TestNewSphereFieldBuildsNonEmptyWorld(t *testing.T) {
	rng := core.NewStdRNG(42)
	built := NewSphereField(rng)
	assert.NotNil(t, built.World)

	bbox := built.World.BoundingBox()
	assert.Greater(t, bbox.X.Size(), 0.0)
	assert.Greater(t, bbox.Y.Size(), 0.0)
}

func TestNewTexturedGroundHitsFloatingSphere(t *testing.T) {
	rng := core.NewStdRNG(7)
	built := NewTexturedGround(rng)
	assert.NotNil(t, built.World)

	r := core.Ray{Origin: core.NewVec3(0, 2, -20), Direction: core.NewVec3(0, 0, 1)}
	rec, hit := built.World.Hit(r, core.NewInterval(0.001, 1000), rng)
	assert.True(t, hit)
	assert.InDelta(t, 18, rec.T, 1e-6)
}
