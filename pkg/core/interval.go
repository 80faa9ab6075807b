package core

import "math"

// Interval is a closed real interval [Min, Max]. It is empty when
// Min > Max.
type Interval struct {
	Min, Max float64
}

// Empty is the interval containing no values.
var Empty = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// Universe is the interval containing all real values.
var Universe = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates the interval [min, max].
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Size returns the width of the interval.
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp returns x clamped to the interval.
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand returns the interval symmetrically padded by delta/2 on each side.
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

// UnionInterval returns the smallest interval containing both a and b.
func UnionInterval(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Translate returns the interval shifted by the given offset.
func (i Interval) Translate(offset float64) Interval {
	return Interval{Min: i.Min + offset, Max: i.Max + offset}
}
