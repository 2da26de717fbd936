package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

// LocalLocker serialises writers inside one process. It backs single-instance
// deployments and tests; multi-instance deployments use RedisLocker.
type LocalLocker struct {
	mu      sync.Mutex
	entries map[string]*localEntry
	wait    time.Duration
}

type localEntry struct {
	sem  chan struct{}
	refs int
}

// NewLocalLocker creates a locker that waits up to wait for a busy key.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		entries: make(map[string]*localEntry),
		wait:    wait,
	}
}

var _ portsrepo.Locker = (*LocalLocker)(nil)

// Obtain blocks until key is free, the wait elapses or ctx is done.
func (l *LocalLocker) Obtain(ctx context.Context, key string) (portsrepo.Lock, error) {
	e := l.acquireEntry(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		return &localLock{locker: l, key: key, entry: e}, nil
	case <-timer.C:
		l.releaseEntry(key, e)
		return nil, fmt.Errorf("%w: lock %s busy", apperrors.ErrConcurrentModification, key)
	case <-ctx.Done():
		l.releaseEntry(key, e)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) acquireEntry(key string) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *LocalLocker) releaseEntry(key string, e *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

type localLock struct {
	locker *LocalLocker
	key    string
	entry  *localEntry
	once   sync.Once
}

func (k *localLock) Release(_ context.Context) error {
	k.once.Do(func() {
		<-k.entry.sem
		k.locker.releaseEntry(k.key, k.entry)
	})
	return nil
}
