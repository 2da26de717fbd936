package repositories

import "context"

// Lock is a held critical section.
type Lock interface {
	// Release gives the lock back. Releasing an expired lock is not an error.
	Release(ctx context.Context) error
}

// Locker serialises writers on a named resource such as a sibling set or a title.
// Implementations return apperrors.ErrConcurrentModification when the lock
// cannot be obtained in time.
type Locker interface {
	Obtain(ctx context.Context, key string) (Lock, error)
}
