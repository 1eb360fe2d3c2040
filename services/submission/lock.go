package submission

import (
	"sync"

	"github.com/google/uuid"
)

// keyedMutex serializes operations per submission so two concurrent saves
// for the same record cannot interleave. Locks are created lazily and
// kept for the submission's lifetime; the set stays small because wizard
// sessions are short-lived.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: map[uuid.UUID]*sync.Mutex{}}
}

// Lock acquires the mutex for id and returns its unlock function.
func (k *keyedMutex) Lock(id uuid.UUID) func() {
	k.mu.Lock()
	lock, ok := k.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[id] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
