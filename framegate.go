package detpost

import (
	"sync"
	"sync/atomic"
)

// FrameGate is a single slot hand off between a frame producer and the
// worker driving a Pipeline.  When the worker is still busy with the
// previous frame the newest submission is dropped instead of queueing
// unboundedly, which keeps a live video stream from building latency
// under backpressure.
type FrameGate struct {
	slot    chan Frame
	dropped atomic.Int64
	close   sync.Once
}

// NewFrameGate returns an open frame gate
func NewFrameGate() *FrameGate {
	return &FrameGate{
		slot: make(chan Frame, 1),
	}
}

// Submit offers a frame to the worker.  Returns false when the slot is
// occupied and the frame was dropped.
func (g *FrameGate) Submit(f Frame) bool {

	select {
	case g.slot <- f:
		return true
	default:
		g.dropped.Add(1)
		return false
	}
}

// Next blocks until a frame is available or the gate is closed.  ok is
// false once the gate has closed and drained.
func (g *FrameGate) Next() (f Frame, ok bool) {
	f, ok = <-g.slot
	return f, ok
}

// Dropped returns the number of frames dropped due to backpressure
func (g *FrameGate) Dropped() int64 {
	return g.dropped.Load()
}

// Close the gate.  A pending frame may still be drained by Next.
func (g *FrameGate) Close() {
	g.close.Do(func() {
		close(g.slot)
	})
}
