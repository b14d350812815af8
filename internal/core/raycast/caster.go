package raycast

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/world"
)

// Caster shards a frame's ray batch across a fixed set of workers and
// stitches the results back together in order.
//
// Cast is not safe for concurrent use; one frame is cast at a time.
type Caster struct {
	world   *world.World
	workers []*Worker

	stopOnce sync.Once
}

// NewCaster starts n workers over w. n <= 0 uses one worker per CPU.
func NewCaster(w *world.World, n int) *Caster {
	if n <= 0 {
		n = runtime.NumCPU()
	}

	c := &Caster{world: w}
	for i := 0; i < n; i++ {
		c.workers = append(c.workers, NewWorker(i, w))
	}

	log.Printf("raycast: started %d workers", n)
	return c
}

// Workers returns the number of workers.
func (c *Caster) Workers() int {
	return len(c.workers)
}

// World returns the world the workers read.
func (c *Caster) World() *world.World {
	return c.world
}

// Cast intersects every segment with the world and returns the results
// index-aligned with segments.
func (c *Caster) Cast(segments []geometry.Segment) ([]geometry.IntersectResult, error) {
	results := make([]geometry.IntersectResult, len(segments))
	if len(segments) == 0 {
		return results, nil
	}

	chunk := (len(segments) + len(c.workers) - 1) / len(c.workers)

	var g errgroup.Group
	for i, wk := range c.workers {
		lo := i * chunk
		if lo >= len(segments) {
			break
		}
		hi := min(lo+chunk, len(segments))

		g.Go(func() error {
			if err := wk.Submit(segments[lo:hi]); err != nil {
				return fmt.Errorf("worker %d: %w", wk.ID(), err)
			}
			shard, err := wk.Collect()
			if err != nil {
				return fmt.Errorf("worker %d: %w", wk.ID(), err)
			}
			copy(results[lo:hi], shard)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CastRays converts rays with ToSegment and casts them.
func (c *Caster) CastRays(rays []geometry.Ray) ([]geometry.IntersectResult, error) {
	segments := make([]geometry.Segment, len(rays))
	for i, r := range rays {
		segments[i] = r.ToSegment()
	}
	return c.Cast(segments)
}

// Stop stops every worker. It is safe to call more than once.
func (c *Caster) Stop() {
	c.stopOnce.Do(func() {
		for _, wk := range c.workers {
			wk.Stop()
		}
		log.Printf("raycast: stopped %d workers", len(c.workers))
	})
}
