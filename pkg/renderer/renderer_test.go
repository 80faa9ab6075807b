package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/hittable"
	"github.com/mvega/pathtracer/pkg/material"
)

func TestRenderProducesFullFramebuffer(t *testing.T) {
	sphere, err := hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0))
	require.NoError(t, err)

	world := hittable.NewHittableList()
	world.Add(sphere)

	cam, err := NewCamera(CameraConfig{
		ImageWidth:      16,
		ImageHeight:     16,
		SamplesPerPixel: 4,
		MaxDepth:        5,
		VFOV:            40,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDist:       1,
		Background:      core.NewVec3(0.5, 0.7, 1.0),
	})
	require.NoError(t, err)

	var tilesSeen int
	renderer := NewRenderer(cam, world, nil, RenderConfig{
		TilesX: 4, TilesY: 4, TMax: 2, Seed: 7,
		Progress: func(completed, total int) { tilesSeen = completed },
	})

	fb, err := renderer.Render()
	require.NoError(t, err)
	assert.Equal(t, 16*16, len(fb.Pixels))
	assert.Equal(t, 16, tilesSeen)
}

// TestRenderSingleEmitterSilhouette exercises end-to-end scenario 1 from
// the testable-properties section: a small diffuse-light quad facing
// the camera should light up the pixels within its silhouette and leave
// everything else black against a black background.
func TestRenderSingleEmitterSilhouette(t *testing.T) {
	light := material.NewDiffuseLightColor(core.NewVec3(4, 4, 4))
	quad := hittable.NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)

	world := hittable.NewHittableList()
	world.Add(quad)

	lights := hittable.NewHittableList()
	lights.Add(quad)

	cam, err := NewCamera(CameraConfig{
		ImageWidth:      16,
		ImageHeight:     16,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		VFOV:            40,
		LookFrom:        core.NewVec3(0, 0, 5),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDist:       5,
		Background:      core.Color{},
	})
	require.NoError(t, err)

	renderer := NewRenderer(cam, world, lights, RenderConfig{TilesX: 2, TilesY: 2, TMax: 4, Seed: 1})
	fb, err := renderer.Render()
	require.NoError(t, err)

	center := fb.At(8, 8)
	corner := fb.At(0, 0)

	assert.Greater(t, int(center.R), 0)
	assert.Equal(t, RGB8{}, corner)
}
