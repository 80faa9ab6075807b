package renderer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/integrator"
)

// ProgressFunc is the opaque progress observer called at most once per
// completed tile (never per-pixel, to keep it cheap under the tile
// lock). completed and total are tile counts, not pixel counts.
type ProgressFunc func(completed, total int)

// RenderConfig configures a Renderer beyond the Camera itself.
type RenderConfig struct {
	TilesX, TilesY int // image is partitioned into at most TilesX x TilesY tiles
	TMax           int // maximum concurrently running tile workers
	Seed           int64
	Progress       ProgressFunc // optional; called once per completed tile
	Logger         core.Logger  // optional; defaults to a no-op logger
}

// tileSlot is the per-tile lock guarding a single tile's batch write
// into the shared framebuffer. It is padded to a cache line so that
// adjacent tiles' locks, held briefly and concurrently by different
// workers, never false-share a cache line.
type tileSlot struct {
	mu sync.Mutex
	_  cpu.CacheLinePad
}

// Renderer drives the camera, integrator, and scene through a
// tile-parallel, bounded-concurrency render producing a Framebuffer.
type Renderer struct {
	Camera *Camera
	World  core.Hittable
	Lights core.PDFHittable
	Config RenderConfig
}

// NewRenderer creates a Renderer over the given camera and scene.
func NewRenderer(camera *Camera, world core.Hittable, lights core.PDFHittable, cfg RenderConfig) *Renderer {
	if cfg.TilesX <= 0 {
		cfg.TilesX = 20
	}
	if cfg.TilesY <= 0 {
		cfg.TilesY = 20
	}
	if cfg.TMax <= 0 {
		cfg.TMax = 1
	}
	if cfg.Logger == nil {
		cfg.Logger = nopLogger{}
	}
	return &Renderer{Camera: camera, World: world, Lights: lights, Config: cfg}
}

// Render runs the tile-parallel render to completion. A worker panic
// (invariant violation) aborts the render: the first panic observed is
// converted into an error returned from Render, and no partial image is
// considered complete, matching "the render either completes and writes
// an image, or reports a fatal error."
func (r *Renderer) Render() (*Framebuffer, error) {
	width, height := r.Camera.ImageWidth, r.Camera.ImageHeight
	fb := NewFramebuffer(width, height)

	tiles := TileSplit(width, height, r.Config.TilesX, r.Config.TilesY)
	locks := make([]tileSlot, len(tiles))

	r.Config.Logger.Printf("Rendering %dx%d across %d tiles (tmax=%d)...\n", width, height, len(tiles), r.Config.TMax)

	gate := newAdmissionGate(r.Config.TMax)

	var wg sync.WaitGroup
	var completed int64
	var firstErr atomic.Value // stores error

	for tileIdx, tile := range tiles {
		wg.Add(1)
		gate.Acquire()

		go func(idx int, t Tile) {
			defer wg.Done()
			defer gate.Release()
			defer func() {
				if p := recover(); p != nil {
					r.Config.Logger.Printf("tile %d panicked: %v\n", idx, p)
					firstErr.CompareAndSwap(nil, fmt.Errorf("render worker panic in tile %d: %v", idx, p))
				}
			}()

			rng := core.NewPCG32(uint64(r.Config.Seed), uint64(idx)+1)
			local := r.renderTile(t, rng)

			locks[idx].mu.Lock()
			for y := t.Y0; y < t.Y1; y++ {
				for x := t.X0; x < t.X1; x++ {
					fb.Set(x, y, local.At(x-t.X0, y-t.Y0))
				}
			}
			locks[idx].mu.Unlock()

			n := atomic.AddInt64(&completed, 1)
			if r.Config.Progress != nil {
				r.Config.Progress(int(n), len(tiles))
			}
		}(tileIdx, tile)
	}

	wg.Wait()

	if e := firstErr.Load(); e != nil {
		return nil, e.(error)
	}
	r.Config.Logger.Printf("Render complete.\n")
	return fb, nil
}

// renderTile computes every pixel within tile bounds into a
// tile-local framebuffer, sequentially sampling each pixel's stratified
// grid with the worker's own RNG (samples within one pixel must be
// processed sequentially since the integrator's recursion consumes
// shared random state).
func (r *Renderer) renderTile(t Tile, rng core.RNG) *Framebuffer {
	local := NewFramebuffer(t.Width(), t.Height())
	sqrtSPP := r.Camera.SqrtSPP()
	scale := r.Camera.PixelSamplesScale()

	for j := t.Y0; j < t.Y1; j++ {
		for i := t.X0; i < t.X1; i++ {
			var sum core.Color
			for sj := 0; sj < sqrtSPP; sj++ {
				for si := 0; si < sqrtSPP; si++ {
					ray := r.Camera.GetRay(i, j, si, sj, rng)
					sum = sum.Add(integrator.RayColor(ray, r.Camera.MaxDepth, r.World, r.Lights, r.Camera.Background, rng))
				}
			}
			pixel := sum.Multiply(scale)
			local.Set(i-t.X0, j-t.Y0, ToRGB8(pixel.X, pixel.Y, pixel.Z))
		}
	}
	return local
}
