package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvega/pathtracer/pkg/core"
)

func TestDielectricAttenuationIsClear(t *testing.T) {
	d := NewDielectric(1.5)
	rec := core.HitRecord{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	rayIn := core.Ray{Direction: core.NewVec3(0, 0, -1)}

	srec, ok := d.Scatter(rayIn, rec, core.NewStdRNG(1))
	assert.True(t, ok)
	assert.True(t, srec.SkipPDF)
	assert.Equal(t, core.NewVec3(1, 1, 1), srec.Attenuation)
}

func TestDielectricGlancingAngleAlwaysTotalInternalReflects(t *testing.T) {
	d := NewDielectric(1.5)
	// Entering from inside the medium (FrontFace false -> eta = 1.5) at a
	// steep angle past the critical angle forces cannotRefract regardless
	// of the Schlick random draw.
	normal := core.NewVec3(0, 0, 1)
	steep := 1.4 // radians, well past asin(1/1.5)
	unitIn := core.NewVec3(0, -math.Sin(steep), -math.Cos(steep)).Unit()
	rec := core.HitRecord{P: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: false}
	rayIn := core.Ray{Direction: unitIn}

	for seed := int64(0); seed < 20; seed++ {
		srec, ok := d.Scatter(rayIn, rec, core.NewStdRNG(seed))
		assert.True(t, ok)
		expected := unitIn.Reflect(normal)
		assert.InDelta(t, expected.X, srec.DeterministicRay.Direction.X, 1e-9)
		assert.InDelta(t, expected.Y, srec.DeterministicRay.Direction.Y, 1e-9)
		assert.InDelta(t, expected.Z, srec.DeterministicRay.Direction.Z, 1e-9)
	}
}

func TestReflectanceIsZeroAtNormalIncidenceForMatchedIndex(t *testing.T) {
	assert.InDelta(t, 0, Reflectance(1.0, 1.0), 1e-12)
}

func TestReflectanceApproachesOneAtGrazingAngle(t *testing.T) {
	assert.Greater(t, Reflectance(0.01, 1.5), 0.9)
}
