package renderer

import "sync"

// admissionGate bounds the number of concurrently running tile workers
// to TMax. Unlike a fixed worker-per-core pool draining a task channel,
// this is a counter-plus-condition-variable gate: a would-be spawner
// increments the counter before waiting and, while over capacity, takes
// that increment back and blocks on the condition variable; every
// Release decrements the counter and wakes exactly one waiter.
type admissionGate struct {
	mu     sync.Mutex
	cond   *sync.Cond
	active int
	tMax   int
}

// newAdmissionGate creates a gate admitting at most tMax concurrent
// holders. tMax <= 0 is treated as 1 (no concurrency) rather than
// unbounded, since an unbounded gate isn't a gate.
func newAdmissionGate(tMax int) *admissionGate {
	if tMax <= 0 {
		tMax = 1
	}
	g := &admissionGate{tMax: tMax}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Acquire increments the active count before the wait loop. While the
// gate is over capacity it withdraws that increment, blocks on the
// condition variable, and increments again on waking, so a blocked
// spawner never occupies a slot and any number of concurrent spawners
// keep making progress as holders release.
func (g *admissionGate) Acquire() {
	g.mu.Lock()
	g.active++
	for g.active > g.tMax {
		g.active--
		g.cond.Wait()
		g.active++
	}
	g.mu.Unlock()
}

// Release decrements the active count and wakes exactly one waiter.
func (g *admissionGate) Release() {
	g.mu.Lock()
	g.active--
	g.cond.Signal()
	g.mu.Unlock()
}
