package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/texture"
)

func TestLambertianScatterUsesCosinePDF(t *testing.T) {
	m := NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
	rec := core.HitRecord{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rng := core.NewStdRNG(1)

	srec, ok := m.Scatter(core.Ray{}, rec, rng)
	assert.True(t, ok)
	assert.False(t, srec.SkipPDF)
	assert.NotNil(t, srec.PDF)
	assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), srec.Attenuation)
}

func TestLambertianScatteringPDFMatchesCosineLobe(t *testing.T) {
	m := NewLambertian(texture.NewSolid(core.Color{}))
	rec := core.HitRecord{Normal: core.NewVec3(0, 1, 0)}

	up := core.Ray{Direction: core.NewVec3(0, 1, 0)}
	assert.InDelta(t, 1.0/math.Pi, m.ScatteringPDF(core.Ray{}, rec, up), 1e-12)

	down := core.Ray{Direction: core.NewVec3(0, -1, 0)}
	assert.Equal(t, 0.0, m.ScatteringPDF(core.Ray{}, rec, down))
}
