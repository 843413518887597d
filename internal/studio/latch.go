package studio

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"imagestudio/internal/domain"
)

// Latch admits at most one in-flight run. A second caller is rejected, not
// queued.
type Latch struct {
	sem  *semaphore.Weighted
	held atomic.Bool
}

// NewLatch returns an open latch.
func NewLatch() *Latch {
	return &Latch{sem: semaphore.NewWeighted(1)}
}

// TryDo runs fn if the latch is free and returns domain.ErrBusy otherwise.
func (l *Latch) TryDo(fn func() error) error {
	if !l.sem.TryAcquire(1) {
		return domain.ErrBusy
	}
	l.held.Store(true)
	defer func() {
		l.held.Store(false)
		l.sem.Release(1)
	}()
	return fn()
}

// Held reports whether a run is in flight.
func (l *Latch) Held() bool {
	return l.held.Load()
}
