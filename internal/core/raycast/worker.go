// Package raycast runs batches of ray segments against a world's walls on
// dedicated worker goroutines.
package raycast

import (
	"errors"
	"log"
	"runtime"
	"sync"

	"chosenoffset.com/wallcaster/internal/core/geometry"
	"chosenoffset.com/wallcaster/internal/world"
)

var (
	// ErrWorkPending is returned by Submit while an earlier batch is queued,
	// being computed, or waiting to be collected.
	ErrWorkPending = errors.New("raycast: previous batch has not been collected")

	// ErrWorkerStopped is returned once a worker has been stopped and has
	// nothing left to hand back.
	ErrWorkerStopped = errors.New("raycast: worker stopped")
)

// State is a worker's position in the submit/compute/collect cycle.
type State int

const (
	StateIdle State = iota
	StateWorking
	StateResultsReady
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWorking:
		return "working"
	case StateResultsReady:
		return "results-ready"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Worker intersects batches of segments with the walls of a world on its
// own goroutine, which holds its OS thread for the worker's lifetime.
//
// The caller and the worker hand batches back and forth through a single
// slot: Submit fills it, the worker computes, Collect empties it. Only one
// batch is ever in flight per worker.
//
// The world is read while a batch is computed and must not be mutated
// until the batch has been collected.
type Worker struct {
	id    int
	world *world.World

	mu               sync.Mutex
	cond             *sync.Cond
	state            State
	pending          []geometry.Segment
	results          []geometry.IntersectResult
	workAvailable    bool
	resultsAvailable bool
	running          bool
	exited           bool

	stopOnce sync.Once
	done     chan struct{}
}

// NewWorker starts a worker for w.
func NewWorker(id int, w *world.World) *Worker {
	wk := &Worker{
		id:      id,
		world:   w,
		state:   StateIdle,
		running: true,
		done:    make(chan struct{}),
	}
	wk.cond = sync.NewCond(&wk.mu)

	go wk.loop()
	return wk
}

// ID returns the worker's identifier.
func (wk *Worker) ID() int {
	return wk.id
}

// State returns the worker's current state.
func (wk *Worker) State() State {
	wk.mu.Lock()
	defer wk.mu.Unlock()
	return wk.state
}

// Submit hands the worker a batch. The batch is copied, so the caller may
// reuse segments once Submit returns.
func (wk *Worker) Submit(segments []geometry.Segment) error {
	wk.mu.Lock()
	defer wk.mu.Unlock()

	if !wk.running {
		return ErrWorkerStopped
	}
	if wk.workAvailable || wk.resultsAvailable || wk.state == StateWorking {
		return ErrWorkPending
	}

	wk.pending = append(wk.pending[:0], segments...)
	wk.workAvailable = true
	wk.state = StateWorking
	wk.cond.Broadcast()
	return nil
}

// Collect blocks until the submitted batch has been computed and returns
// one result per submitted segment, in submission order. If the worker is
// stopped with nothing left to collect, Collect returns ErrWorkerStopped
// instead of blocking.
func (wk *Worker) Collect() ([]geometry.IntersectResult, error) {
	wk.mu.Lock()
	defer wk.mu.Unlock()

	for !wk.resultsAvailable {
		if wk.exited {
			return nil, ErrWorkerStopped
		}
		wk.cond.Wait()
	}

	results := wk.results
	wk.results = nil
	wk.resultsAvailable = false
	if wk.exited {
		wk.state = StateStopped
	} else {
		wk.state = StateIdle
	}
	return results, nil
}

// Stop asks the worker to exit and waits for it. A batch that was already
// submitted is finished first and can still be collected. Stop may be
// called more than once and from several goroutines.
func (wk *Worker) Stop() {
	wk.stopOnce.Do(func() {
		wk.mu.Lock()
		wk.running = false
		wk.cond.Broadcast()
		wk.mu.Unlock()
	})
	<-wk.done
}

func (wk *Worker) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(wk.done)

	wk.mu.Lock()
	for {
		for !wk.workAvailable && wk.running {
			wk.cond.Wait()
		}
		if !wk.workAvailable {
			break
		}

		batch := wk.pending
		wk.pending = nil
		wk.workAvailable = false
		wk.state = StateWorking
		wk.mu.Unlock()

		results := wk.compute(batch)

		wk.mu.Lock()
		wk.results = results
		wk.resultsAvailable = true
		wk.state = StateResultsReady
		wk.cond.Broadcast()
	}

	wk.exited = true
	if !wk.resultsAvailable {
		wk.state = StateStopped
	}
	// wake collectors waiting on a batch that will never come
	wk.cond.Broadcast()
	wk.mu.Unlock()

	log.Printf("raycast: worker %d stopped", wk.id)
}

// compute tests every segment of the batch against the full wall list.
func (wk *Worker) compute(batch []geometry.Segment) []geometry.IntersectResult {
	var walls []geometry.Segment
	if wk.world != nil {
		walls = wk.world.Walls()
	}

	results := make([]geometry.IntersectResult, len(batch))
	for i, s := range batch {
		results[i] = s.IntersectList(walls)
	}
	return results
}
