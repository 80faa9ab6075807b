// Package scene provides in-process demo scene builders used by
// cmd/raytracer and the integration tests to exercise the engine
// end-to-end; scene construction from files remains out of scope (no
// parser is built here), grounded on the teacher's pkg/scene package.
package scene

import (
	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/hittable"
	"github.com/mvega/pathtracer/pkg/material"
	"github.com/mvega/pathtracer/pkg/renderer"
	"github.com/mvega/pathtracer/pkg/texture"
)

// Built is the output of a scene builder: a BVH-backed world, the
// subset of hittables treated as "important" emitters for mixture
// importance sampling, and a camera configuration tuned for the scene.
type Built struct {
	World        core.Hittable
	Lights       *hittable.HittableList
	CameraConfig renderer.CameraConfig
}

// NewCornellBox builds the classic 555x555x555 Cornell box: red/green
// side walls, a white floor/ceiling/back wall, a square ceiling light,
// and two boxes (one tall and rotated, one short), matching the
// standard reference scene used in end-to-end scenario 5.
func NewCornellBox() Built {
	red := material.NewLambertian(texture.NewSolid(core.NewVec3(0.65, 0.05, 0.05)))
	white := material.NewLambertian(texture.NewSolid(core.NewVec3(0.73, 0.73, 0.73)))
	green := material.NewLambertian(texture.NewSolid(core.NewVec3(0.12, 0.45, 0.15)))
	lightMat := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	const boxSize = 555.0

	world := hittable.NewHittableList()

	world.Add(hittable.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	world.Add(hittable.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	lightQuad := hittable.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), lightMat)
	world.Add(lightQuad)

	tallBox := hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	var tall core.Hittable = hittable.NewRotateY(tallBox, 15)
	tall = hittable.NewTranslate(tall, core.NewVec3(265, 0, 295))
	world.Add(tall)

	shortBox := hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	var short core.Hittable = hittable.NewRotateY(shortBox, -18)
	short = hittable.NewTranslate(short, core.NewVec3(130, 0, 65))
	world.Add(short)

	lights := hittable.NewHittableList()
	lights.Add(lightQuad)

	bvh := hittable.NewBVH(world.Objects)

	return Built{
		World:  bvh,
		Lights: lights,
		CameraConfig: renderer.CameraConfig{
			ImageWidth:      400,
			ImageHeight:     400,
			SamplesPerPixel: 200,
			MaxDepth:        50,
			VFOV:            40,
			LookFrom:        core.NewVec3(278, 278, -800),
			LookAt:          core.NewVec3(278, 278, 0),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDist:       800,
			Background:      core.Color{},
		},
	}
}
