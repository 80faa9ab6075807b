package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalContainsAndSurrounds(t *testing.T) {
	i := NewInterval(1, 3)
	assert.True(t, i.Contains(1))
	assert.True(t, i.Contains(3))
	assert.False(t, i.Surrounds(1))
	assert.True(t, i.Surrounds(2))
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(0, 1)
	assert.Equal(t, 0.0, i.Clamp(-5))
	assert.Equal(t, 1.0, i.Clamp(5))
	assert.Equal(t, 0.5, i.Clamp(0.5))
}

func TestIntervalEmpty(t *testing.T) {
	assert.True(t, Empty.Min > Empty.Max)
}

func TestIntervalUnion(t *testing.T) {
	a := NewInterval(0, 1)
	b := NewInterval(2, 3)
	u := UnionInterval(a, b)
	assert.Equal(t, 0.0, u.Min)
	assert.Equal(t, 3.0, u.Max)
}

func TestIntervalExpand(t *testing.T) {
	i := NewInterval(1, 1)
	e := i.Expand(0.1)
	assert.InDelta(t, 0.95, e.Min, 1e-9)
	assert.InDelta(t, 1.05, e.Max, 1e-9)
}
