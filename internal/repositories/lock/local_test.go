package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/accountflow_ledger/internal/apperrors"
	"github.com/SscSPs/accountflow_ledger/internal/repositories/lock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_BusyKeyTimesOut(t *testing.T) {
	l := lock.NewLocalLocker(20 * time.Millisecond)
	ctx := context.Background()

	held, err := l.Obtain(ctx, "title:1")
	require.NoError(t, err)

	_, err = l.Obtain(ctx, "title:1")
	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, held.Release(ctx))

	again, err := l.Obtain(ctx, "title:1")
	require.NoError(t, err)
	assert.NoError(t, again.Release(ctx))
}

func TestLocalLocker_IndependentKeys(t *testing.T) {
	l := lock.NewLocalLocker(10 * time.Millisecond)
	ctx := context.Background()

	a, err := l.Obtain(ctx, "title:a")
	require.NoError(t, err)
	b, err := l.Obtain(ctx, "title:b")
	require.NoError(t, err)

	assert.NoError(t, a.Release(ctx))
	assert.NoError(t, b.Release(ctx))
}

func TestLocalLocker_ReleaseTwiceIsHarmless(t *testing.T) {
	l := lock.NewLocalLocker(10 * time.Millisecond)
	ctx := context.Background()

	k, err := l.Obtain(ctx, "k")
	require.NoError(t, err)
	assert.NoError(t, k.Release(ctx))
	assert.NoError(t, k.Release(ctx))

	k2, err := l.Obtain(ctx, "k")
	require.NoError(t, err)
	assert.NoError(t, k2.Release(ctx))
}

func TestLocalLocker_MutualExclusion(t *testing.T) {
	l := lock.NewLocalLocker(5 * time.Second)
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k, err := l.Obtain(ctx, "shared")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			_ = k.Release(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	l := lock.NewLocalLocker(time.Second)
	held, err := l.Obtain(context.Background(), "k")
	require.NoError(t, err)
	defer held.Release(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Obtain(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
