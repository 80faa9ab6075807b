package scene

import (
	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/hittable"
	"github.com/mvega/pathtracer/pkg/material"
	"github.com/mvega/pathtracer/pkg/renderer"
	"github.com/mvega/pathtracer/pkg/texture"
)

// NewSphereField builds the classic scattered-spheres scene: a large
// checkered ground sphere and a grid of small spheres with randomized
// position, material (diffuse, metal, or glass), and (for diffuse
// spheres) vertical motion, plus three larger showcase spheres. It
// exercises BVH construction over many leaves, moving-sphere time
// intervals, and every material in one tree.
func NewSphereField(rng core.RNG) Built {
	ground := material.NewLambertian(texture.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	world := hittable.NewHittableList()
	groundSphere, _ := hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground)
	world.Add(groundSphere)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			var sphere *hittable.Sphere
			var err error

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(rng).MultiplyVec(randomColor(rng))
				mat = material.NewLambertian(texture.NewSolid(albedo))
				target := center.Add(core.NewVec3(0, rng.Float64()*0.5, 0))
				sphere, err = hittable.NewMovingSphere(center, target, 0.2, mat)
			case chooseMat < 0.95:
				albedo := randomColorRange(rng, 0.5, 1)
				fuzz := rng.Float64() * 0.5
				mat = material.NewMetal(albedo, fuzz)
				sphere, err = hittable.NewSphere(center, 0.2, mat)
			default:
				mat = material.NewDielectric(1.5)
				sphere, err = hittable.NewSphere(center, 0.2, mat)
			}

			if err != nil {
				continue
			}
			world.Add(sphere)
		}
	}

	glass := material.NewDielectric(1.5)
	s1, _ := hittable.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	world.Add(s1)

	diffuse := material.NewLambertian(texture.NewSolid(core.NewVec3(0.4, 0.2, 0.1)))
	s2, _ := hittable.NewSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse)
	world.Add(s2)

	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)
	s3, _ := hittable.NewSphere(core.NewVec3(4, 1, 0), 1.0, metal)
	world.Add(s3)

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
			DefocusAngle:    0.6,
			FocusDist:       10,
			Background:      core.NewVec3(0.7, 0.8, 1.0),
		},
	}
}

func randomColor(rng core.RNG) core.Color {
	return core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64())
}

func randomColorRange(rng core.RNG, lo, hi float64) core.Color {
	span := hi - lo
	return core.NewVec3(lo+span*rng.Float64(), lo+span*rng.Float64(), lo+span*rng.Float64())
}
