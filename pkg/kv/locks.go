package kv

import "sync"

// lockTable hands out one mutex per record id so concurrent mutations on the
// same id are serialized while unrelated ids proceed independently. Entries
// are reference counted and dropped once the last holder unlocks.
type lockTable struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{entries: make(map[string]*lockEntry)}
}

// Lock acquires the mutex for id and returns its release func.
func (t *lockTable) Lock(id string) func() {
	t.mu.Lock()
	entry, ok := t.entries[id]
	if !ok {
		entry = &lockEntry{}
		t.entries[id] = entry
	}
	entry.refs++
	t.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		t.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(t.entries, id)
		}
		t.mu.Unlock()
	}
}
