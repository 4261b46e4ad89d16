package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Mutexes are created on first use
// and live for the lifetime of the manager.
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex
func (lm *LockManager[K]) WithLock(key K, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
