// Package locker provides in-process mutual exclusion keyed by an
// identifier. The loading engine uses it to serialize the capacity
// check and load upsert for a single session while loads on other
// sessions proceed in parallel.
package locker

import "sync"

// KeyedLocker hands out one mutex per key. A mutex is created lazily on
// first use and retained for the lifetime of the locker; the key space
// (open sessions) is small and bounded by the drone fleet, so entries
// are not reaped.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyedLocker creates an empty KeyedLocker.
func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the mutex for the given key, blocking until it is free.
// Calls with distinct keys never block each other.
func (l *KeyedLocker) Lock(key string) {
	l.mutexFor(key).Lock()
}

// Unlock releases the mutex for the given key. Unlocking a key that was
// never locked panics, same as sync.Mutex.
func (l *KeyedLocker) Unlock(key string) {
	l.mutexFor(key).Unlock()
}

func (l *KeyedLocker) mutexFor(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
