package postprocess

import (
	"sync"
)

// scratchCapacity is the initial capacity of pooled candidate buffers.
// Anchors surviving the objectness gate typically number in the tens, not
// thousands, so this rarely grows.
const scratchCapacity = 256

// scratchPool recycles candidate scratch buffers between DetectObjects
// calls so per frame decoding does not allocate under steady state.  The
// pool hands out length zero slices and pointers are stored to avoid an
// allocation per Put.
type scratchPool struct {
	pool sync.Pool
}

// newScratchPool returns an initialised scratchPool
func newScratchPool() *scratchPool {
	return &scratchPool{
		pool: sync.Pool{
			New: func() any {
				s := make([]candidate, 0, scratchCapacity)
				return &s
			},
		},
	}
}

// get returns an empty candidate buffer from the pool
func (p *scratchPool) get() []candidate {
	s := p.pool.Get().(*[]candidate)
	return (*s)[:0]
}

// put returns a buffer to the pool.  Only buffers previously obtained via
// get, or grown from one by append, may be returned.
func (p *scratchPool) put(s []candidate) {
	if cap(s) == 0 {
		return
	}
	p.pool.Put(&s)
}
