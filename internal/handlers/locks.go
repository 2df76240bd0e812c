package handlers

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// instanceLocks serializes actions on the same view instance so each one
// runs to completion before the next starts.
type instanceLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *instanceLocks) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &l.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}
