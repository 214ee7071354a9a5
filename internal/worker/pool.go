// Package worker provides a worker pool for fanning out independent,
// read-only computations (per-square move generation, batch classification).
package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkItem represents a value to be processed.
type WorkItem[T any] struct {
	Value T
	Index int // Original index for ordering results
}

// ProcessResult represents the result of processing a work item.
type ProcessResult[R any] struct {
	Value R
	Index int
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc[T, R any] func(item WorkItem[T]) ProcessResult[R]

// Pool manages a pool of workers.
type Pool[T, R any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[T]
	resultChan  chan ProcessResult[R]
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// poolSettings collects option values before the pool is built.
type poolSettings struct {
	numWorkers int
	bufferSize int
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool[T, R any](numWorkers, bufferSize int, processFunc ProcessFunc[T, R]) *Pool[T, R] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool[T, R]{
		numWorkers:  numWorkers,
		bufferSize:  bufferSize,
		workChan:    make(chan WorkItem[T], bufferSize),
		resultChan:  make(chan ProcessResult[R], bufferSize),
		processFunc: processFunc,
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	s := poolSettings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return NewPool(s.numWorkers, s.bufferSize, processFunc)
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool[T, R]) Submit(item WorkItem[T]) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool[T, R]) TrySubmit(item WorkItem[T]) bool {
	if atomic.LoadInt32(&p.stopFlag) != 0 {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool[T, R]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool[T, R]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once all workers are done.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool[T, R]) Results() <-chan ProcessResult[R] {
	return p.resultChan
}

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Map applies fn to every value on a pool of numWorkers goroutines and
// returns the complete result set in input order. If any call fails, the
// error of the lowest-indexed failing value is returned.
func Map[T, R any](values []T, numWorkers int, fn func(T) (R, error)) ([]R, error) {
	return MapContext(context.Background(), values, numWorkers, fn)
}

// MapContext is Map with cancellation. Once ctx is done the pool is stopped,
// queued values are dropped unprocessed and ctx.Err() is returned.
func MapContext[T, R any](ctx context.Context, values []T, numWorkers int, fn func(T) (R, error)) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}
	if numWorkers > len(values) {
		numWorkers = len(values)
	}

	pool := NewPoolWithOptions(func(item WorkItem[T]) ProcessResult[R] {
		v, err := fn(item.Value)
		return ProcessResult[R]{Value: v, Index: item.Index, Error: err}
	}, WithWorkers(numWorkers), WithBufferSize(len(values)))
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		for i, v := range values {
			// The buffer holds every value, so this only fails once stopped.
			if !pool.TrySubmit(WorkItem[T]{Value: v, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	results := make([]R, len(values))
	errs := make([]error, len(values))
	for res := range pool.Results() {
		results[res.Index] = res.Value
		errs[res.Index] = res.Error
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
