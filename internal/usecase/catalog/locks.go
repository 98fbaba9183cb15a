package catalog

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// stripedLocks serializes work per key with a fixed set of mutexes.
// Distinct keys may share a stripe; that only costs throughput.
type stripedLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *stripedLocks) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &l.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}
