package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/hittable"
	"github.com/mvega/pathtracer/pkg/material"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.lines = append(r.lines, format)
}

func TestRenderLogsStartAndCompletion(t *testing.T) {
	sphere, err := hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0))
	assert.NoError(t, err)

	world := hittable.NewHittableList()
	world.Add(sphere)

	cam, err := NewCamera(CameraConfig{
		ImageWidth: 8, ImageHeight: 8, SamplesPerPixel: 1, MaxDepth: 2,
		VFOV: 40, LookFrom: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1),
		VUp: core.NewVec3(0, 1, 0), FocusDist: 1,
	})
	assert.NoError(t, err)

	logger := &recordingLogger{}
	r := NewRenderer(cam, world, nil, RenderConfig{TilesX: 2, TilesY: 2, TMax: 2, Logger: logger})

	_, err = r.Render()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(logger.lines), 2)
}

func TestRenderDefaultsToNopLogger(t *testing.T) {
	sphere, err := hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0))
	assert.NoError(t, err)

	world := hittable.NewHittableList()
	world.Add(sphere)

	cam, err := NewCamera(CameraConfig{
		ImageWidth: 4, ImageHeight: 4, SamplesPerPixel: 1, MaxDepth: 1,
		VFOV: 40, LookFrom: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1),
		VUp: core.NewVec3(0, 1, 0), FocusDist: 1,
	})
	assert.NoError(t, err)

	r := NewRenderer(cam, world, nil, RenderConfig{TilesX: 1, TilesY: 1, TMax: 1})
	_, err = r.Render()
	assert.NoError(t, err)
}
