// Package pool provides a fixed-size, persistent worker pool used to
// decompose the row and column passes of 2-D FFTs across goroutines.
//
// FFT decomposition is strictly bulk-synchronous: a pass fans out to
// workers and the caller waits for all of them before the next pass
// begins. A simple submit/wait fork-join interface is therefore enough;
// no work stealing or cancellation is needed.
package pool

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Handle is returned by Submit. Wait blocks until the submitted function
// has finished and reports whether it completed without panicking.
type Handle struct {
	wg     sync.WaitGroup
	failed atomic.Bool
	err    error
}

// Wait blocks until the work item finishes. It returns false, with a
// non-nil error from Err, if the item panicked.
func (h *Handle) Wait() bool {
	h.wg.Wait()
	return !h.failed.Load()
}

// Err returns the error recorded if the work item panicked, or nil if
// it completed normally. Only meaningful after Wait returns.
func (h *Handle) Err() error {
	return h.err
}

type workItem struct {
	fn     func()
	handle *Handle
}

// Pool is a fixed-cardinality worker pool. Workers are spawned once at
// construction and run until Close. Submitted items run in parallel with
// no fairness guarantee beyond first-come-first-served among ready items.
type Pool struct {
	size      int
	work      chan workItem
	closeOnce sync.Once
	closed    atomic.Bool
}

// New creates a pool with the largest power of two not exceeding size
// workers (size <= 0 uses GOMAXPROCS). ParallelRange splits its range
// into at most Size() contiguous chunks, so a power-of-two pool divides
// power-of-two row and column counts into equal chunks.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	size = floorPow2(size)

	p := &Pool{
		size: size,
		work: make(chan workItem, size*2),
	}
	for i := 0; i < size; i++ {
		go p.run()
	}
	return p
}

// Size returns the pool's fixed worker count.
func (p *Pool) Size() int {
	return p.size
}

func (p *Pool) run() {
	for item := range p.work {
		p.exec(item)
	}
}

func (p *Pool) exec(item workItem) {
	defer item.handle.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			item.handle.failed.Store(true)
			item.handle.err = errors.Errorf("jtransforms: worker panic: %v", r)
			log.Printf("jtransforms: pool worker recovered from panic: %v", r)
		}
	}()
	item.fn()
}

// Submit schedules f to run on a worker and returns a Handle. If the
// pool has been closed, f runs synchronously on the calling goroutine so
// callers never observe lost work.
func (p *Pool) Submit(f func()) *Handle {
	h := &Handle{}
	h.wg.Add(1)

	if p.closed.Load() {
		p.exec(workItem{fn: f, handle: h})
		return h
	}

	p.work <- workItem{fn: f, handle: h}
	return h
}

// ParallelRange splits [0, n) into at most Size() contiguous chunks of
// equal length (the last may be shorter) and runs fn over each chunk on
// the pool, blocking until all chunks complete. If any chunk panicked,
// ParallelRange returns the first failed chunk's Err; the other chunks
// still ran to completion.
func (p *Pool) ParallelRange(n int, fn func(start, end int)) error {
	if n <= 0 {
		return nil
	}

	workers := p.size
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return nil
	}

	chunk := (n + workers - 1) / workers
	handles := make([]*Handle, 0, workers)

	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		handles = append(handles, p.Submit(func() { fn(start, end) }))
	}

	var firstErr error
	for _, h := range handles {
		if !h.Wait() && firstErr == nil {
			firstErr = h.Err()
		}
	}
	return firstErr
}

// Close shuts down the pool. Pending work still completes. Close is
// idempotent.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.work)
	})
}

func floorPow2(n int) int {
	if n <= 1 {
		return 1
	}
	v := 1
	for v*2 <= n {
		v *= 2
	}
	return v
}
