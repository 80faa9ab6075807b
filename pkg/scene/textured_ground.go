package scene

import (
	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/hittable"
	"github.com/mvega/pathtracer/pkg/material"
	"github.com/mvega/pathtracer/pkg/renderer"
	"github.com/mvega/pathtracer/pkg/texture"
)

// NewTexturedGround builds two large spheres sharing a Perlin marble
// texture (one as "ground", one floating above it) plus a small sphere
// wrapped in a procedurally generated checkerboard bitmap, exercising
// the Noise and Image texture paths without requiring a file on disk.
func NewTexturedGround(rng core.RNG) Built {
	marble := material.NewLambertian(texture.NewNoise(4, rng))

	world := hittable.NewHittableList()

	groundSphere, _ := hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble)
	world.Add(groundSphere)

	floatingSphere, _ := hittable.NewSphere(core.NewVec3(0, 2, 0), 2, marble)
	world.Add(floatingSphere)

	checkerImage := texture.NewCheckerboardImage(64, 64, 8,
		core.NewVec3(0.9, 0.2, 0.2), core.NewVec3(0.1, 0.1, 0.9))
	bitmapMaterial := material.NewLambertian(texture.NewImage(checkerImage))
	bitmapSphere, _ := hittable.NewSphere(core.NewVec3(4, 1, 3), 1, bitmapMaterial)
	world.Add(bitmapSphere)

	bvh := hittable.NewBVH(world.Objects)

	return Built{
		World:  bvh,
		Lights: hittable.NewHittableList(),
		CameraConfig: renderer.CameraConfig{
			ImageWidth:      400,
			ImageHeight:     225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			VFOV:            20,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       10,
			Background:      core.NewVec3(0.7, 0.8, 1.0),
		},
	}
}
