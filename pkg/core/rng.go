package core

import "math/rand"

// RNG is the uniform random source every sampling routine in this module
// is written against. Each render worker owns one instance; callers MUST
// NOT share an RNG across goroutines.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntRange returns a uniform integer in [a, b].
	IntRange(a, b int) int
}

// StdRNG adapts math/rand.Rand to RNG. It is the default source used
// throughout the renderer, threaded explicitly per worker the way the
// rest of this module threads every other piece of mutable state.
type StdRNG struct {
	r *rand.Rand
}

// NewStdRNG creates a StdRNG seeded from the given value.
func NewStdRNG(seed int64) *StdRNG {
	return &StdRNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (s *StdRNG) Float64() float64 { return s.r.Float64() }

// IntRange returns a uniform integer in [a, b].
func (s *StdRNG) IntRange(a, b int) int {
	return a + s.r.Intn(b-a+1)
}

// PCG32 is a small, fast permuted congruential generator: a 64-bit LCG
// state run through an output permutation, a cheap step up from a bare
// LCG while remaining allocation-free and trivially seedable per worker.
type PCG32 struct {
	state uint64
	inc   uint64
}

const pcgMultiplier uint64 = 6364136223846793005

// NewPCG32 creates a PCG32 seeded from the given seed and stream
// selector (two independent seeds sharing the same stream would be
// correlated, so callers typically derive distinct streams per worker).
func NewPCG32(seed, stream uint64) *PCG32 {
	p := &PCG32{inc: (stream << 1) | 1}
	p.nextUint32()
	p.state += seed
	p.nextUint32()
	return p
}

func (p *PCG32) nextUint32() uint32 {
	old := p.state
	p.state = old*pcgMultiplier + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Float64 returns a uniform value in [0, 1) built from two 32-bit draws.
func (p *PCG32) Float64() float64 {
	hi := uint64(p.nextUint32())
	lo := uint64(p.nextUint32())
	const mantissaBits = 53
	combined := (hi<<32 | lo) >> (64 - mantissaBits)
	return float64(combined) / float64(uint64(1)<<mantissaBits)
}

// IntRange returns a uniform integer in [a, b].
func (p *PCG32) IntRange(a, b int) int {
	n := b - a + 1
	return a + int(p.nextUint32())%n
}
