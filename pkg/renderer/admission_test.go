package renderer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdmissionGateBoundsConcurrency(t *testing.T) {
	const tMax = 3
	const workers = 20
	gate := newAdmissionGate(tMax)

	var active, maxActive int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gate.Acquire()
			n := atomic.AddInt64(&active, 1)
			for {
				cur := atomic.LoadInt64(&maxActive)
				if n <= cur || atomic.CompareAndSwapInt64(&maxActive, cur, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt64(&active, -1)
			gate.Release()
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, int(maxActive), tMax)
	assert.Equal(t, int64(0), atomic.LoadInt64(&active))
}

func TestAdmissionGateZeroTMaxMeansOne(t *testing.T) {
	gate := newAdmissionGate(0)
	assert.Equal(t, 1, gate.tMax)
}
