package detpost

import (
	"sync"
)

// Pool is a simple pipeline pool for callers running several independent
// engine instances, one pipeline per instance.  Frames processed through
// different pipelines run concurrently, the serialization constraint only
// holds per engine instance.
type Pool struct {
	// pool of pipelines
	pipelines chan *Pipeline
	// size of pool
	size  int
	close sync.Once
}

// NewPool creates a new pipeline pool of the given size.  The factory is
// called once per slot and must return a pipeline bound to its own engine
// instance.
func NewPool(size int, factory func() (*Pipeline, error)) (*Pool, error) {
	p := &Pool{
		pipelines: make(chan *Pipeline, size),
		size:      size,
	}

	for i := 0; i < size; i++ {
		pl, err := factory()

		if err != nil {
			// release any instances created before receiving the error
			p.Close()
			return nil, err
		}

		// attach to pool
		p.Return(pl)
	}

	return p, nil
}

// Get a pipeline from the pool, blocking until one is free
func (p *Pool) Get() *Pipeline {
	return <-p.pipelines
}

// Return a pipeline to the pool
func (p *Pool) Return(pipeline *Pipeline) {
	select {
	case p.pipelines <- pipeline:
	default:
		// pool is full or closed
	}
}

// Size returns the number of pipelines the pool was created with
func (p *Pool) Size() int {
	return p.size
}

// Close the pool
func (p *Pool) Close() {
	p.close.Do(func() {
		close(p.pipelines)

		// drain remaining pipelines
		for range p.pipelines {
		}
	})
}
