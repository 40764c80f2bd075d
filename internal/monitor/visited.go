package monitor

import "sync"

// visitedSet remembers every track reference seen during one run. It only grows.
type visitedSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

func newVisitedSet() *visitedSet {
	return &visitedSet{seen: make(map[string]struct{})}
}

// Add records url and reports whether it was new
func (v *visitedSet) Add(url string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.seen[url]; ok {
		return false
	}
	v.seen[url] = struct{}{}
	return true
}

// Contains reports whether url was already seen
func (v *visitedSet) Contains(url string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.seen[url]
	return ok
}

// Len returns the number of seen references
func (v *visitedSet) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.seen)
}
