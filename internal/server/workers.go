package server

import (
	"context"

	"github.com/hamzabenaggoh/Engineering-Patent-App/internal/instrumentation"
)

// DefaultWorkerCount bounds concurrent calendar calls. Calendar API requests
// block for the full round trip, so the pool keeps a tool-call burst from
// opening an unbounded number of upstream connections.
const DefaultWorkerCount = 4

// WorkerPool runs blocking jobs on a bounded number of workers.
type WorkerPool struct {
	slots   chan struct{}
	metrics *instrumentation.Metrics
}

// NewWorkerPool creates a pool with the given number of workers.
// A size of zero or less falls back to DefaultWorkerCount.
func NewWorkerPool(size int, metrics *instrumentation.Metrics) *WorkerPool {
	if size <= 0 {
		size = DefaultWorkerCount
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &WorkerPool{
		slots:   make(chan struct{}, size),
		metrics: metrics,
	}
}

// Size returns the number of workers in the pool.
func (p *WorkerPool) Size() int {
	return cap(p.slots)
}

// Do runs fn on a pool worker and waits for it to finish. If ctx is
// cancelled while waiting for a worker or while fn runs, Do returns ctx.Err()
// immediately; a running fn keeps its slot until it returns on its own.
func (p *WorkerPool) Do(ctx context.Context, fn func() error) error {
	p.metrics.IncrementWorkerQueueDepth(ctx)
	defer p.metrics.DecrementWorkerQueueDepth(ctx)

	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		defer func() { <-p.slots }()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
