package worker

import (
	"context"
	"log"
	"runtime"
	"sync"

	"screen-capture-overlay/capture"
)

// ResultCallback is invoked when the sink finishes a region (from a
// worker goroutine). The event loop should pass a closure that posts
// back into the loop safely.
type ResultCallback func(err error)

// Pool dispatches completed selections to the external capture sink off
// the UI thread. Fixed-size, with a 1-slot input queue for strict
// back-pressure: a selection made while one is still processing is
// dropped rather than queued.
type Pool struct {
	sink capture.Sink
	jobs chan job
	wg   sync.WaitGroup
}

type job struct {
	ctx         context.Context
	region      capture.Region
	screenIndex int
	cb          ResultCallback
}

// New creates a pool around the given sink. Size defaults to NumCPU when
// size<=0.
func New(sink capture.Sink, size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	p := &Pool{sink: sink, jobs: make(chan job, 1)}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				log.Printf("Worker: Dispatching region %dx%d from screen %d", j.region.Width, j.region.Height, j.screenIndex)
				err := p.sink.HandleRegion(j.ctx, j.region, j.screenIndex)
				if err != nil {
					log.Printf("Worker: Sink failed: %v", err)
				}
				j.cb(err)
			}
		}()
	}
}

// Submit enqueues a region if the single-slot queue is free. Returns
// false if dropped.
func (p *Pool) Submit(ctx context.Context, region capture.Region, screenIndex int, cb ResultCallback) bool {
	select {
	case p.jobs <- job{ctx: ctx, region: region, screenIndex: screenIndex, cb: cb}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining current work.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
