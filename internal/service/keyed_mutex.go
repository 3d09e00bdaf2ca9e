package service

import "sync"

// keyedMutex serialises work per key. Entries are reference counted and
// dropped when the last holder unlocks, so the map only holds keys that are
// in use.
type keyedMutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex[K comparable]() *keyedMutex[K] {
	return &keyedMutex[K]{locks: make(map[K]*keyedEntry)}
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *keyedMutex[K]) Lock(key K) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex[K]) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

// progressKey identifies one learner's progress in one course.
type progressKey struct {
	UserID   int
	CourseID int
}
