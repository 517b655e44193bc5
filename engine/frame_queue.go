package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// FrameQueue is the redraw-aligned callback primitive
// Callbacks requested during a pump run on the next pump, never the current one
type FrameQueue struct {
	mu      sync.Mutex
	pending []func()
	frames  atomic.Uint64
}

// NewFrameQueue creates an empty frame queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next frame
func (q *FrameQueue) RequestFrame(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Pump runs the callbacks queued before this call and returns how many ran
func (q *FrameQueue) Pump() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	q.frames.Add(1)
	return len(batch)
}

// Pending returns the number of callbacks waiting for the next frame
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Frames returns the number of completed pumps
func (q *FrameQueue) Frames() uint64 {
	return q.frames.Load()
}

// Drive pumps the queue on a fixed interval until ctx is cancelled
// after runs once per frame following the pump, typically event dispatch and redraw
func (q *FrameQueue) Drive(ctx context.Context, interval time.Duration, after func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.Pump()
			if after != nil {
				after()
			}
		}
	}
}
