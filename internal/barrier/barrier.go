// Package barrier implements a one-shot completion barrier: a single consumer
// blocks until the producer side declares all work finished.
package barrier

import "sync"

// State represents the current state of a Barrier
type State string

const (
	// Pending means work is still in progress and Wait blocks
	Pending State = "pending"
	// Opened means work has completed; terminal
	Opened State = "opened"
)

// Barrier is a boolean completion flag paired with a condition variable.
// The flag moves from false to true exactly once. One consumer is expected to
// wait on it, so opening signals a single waiter.
type Barrier struct {
	cond   *sync.Cond
	mu     sync.Mutex
	opened bool
}

// New creates a Barrier in the Pending state
func New() *Barrier {
	b := &Barrier{}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Open sets the completion flag and wakes the waiting consumer.
// Returns false if the barrier was already open, in which case nothing
// happens.
func (b *Barrier) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.opened {
		return false
	}
	b.opened = true
	b.cond.Signal()
	return true
}

// Wait blocks until the barrier is open. It returns immediately if it
// already is. The flag is re-checked after every wakeup.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for !b.opened {
		b.cond.Wait()
	}
}

// State returns the current state
func (b *Barrier) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.opened {
		return Opened
	}
	return Pending
}
