package store

import "sync"

// fence tags each logical query with a monotonically increasing sequence
// number and rejects results that would land after a newer one has
// already been applied.
type fence struct {
	mu      sync.Mutex
	next    map[string]uint64
	applied map[string]uint64
}

func newFence() *fence {
	return &fence{
		next:    map[string]uint64{},
		applied: map[string]uint64{},
	}
}

func (f *fence) begin(key string) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next[key]++
	return f.next[key]
}

// commit reports whether the result tagged with seq is still the newest
// and records it as applied if so.
func (f *fence) commit(key string, seq uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if seq <= f.applied[key] {
		return false
	}
	f.applied[key] = seq
	return true
}
