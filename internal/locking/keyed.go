// Package locking provides a mutex keyed by string, used to serialize
// mutating operations per session without serializing across sessions.
package locking

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Keyed is a set of mutexes addressed by key. Locks are created on first
// use and released back when the last holder or waiter unlocks, so the
// map does not grow with the number of keys ever seen.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// New creates an empty Keyed lock set
func New() *Keyed {
	return &Keyed{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key, blocking until it is available
func (k *Keyed) Lock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. It must only be called by the
// current holder.
func (k *Keyed) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		k.mu.Unlock()
		panic("locking: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
