// Package concurrency serializes work on shared keys within one process.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key, created on first use
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its release function
func (lm *LockManager) Lock(key string) (unlock func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// Forget drops the mutex for key. Call it only while holding that mutex,
// after the keyed resource is gone for good.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}
