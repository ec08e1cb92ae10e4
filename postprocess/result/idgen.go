package result

import "sync/atomic"

// IDGenerator hands out incremental ID numbers used to tag detection
// results.  Safe for concurrent use.
type IDGenerator struct {
	id atomic.Int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (g *IDGenerator) GetNext() int64 {
	return g.id.Add(1)
}
