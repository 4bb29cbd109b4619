package async_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvusHold/fleet/async"
)

func TestGoCompletesWithResult(t *testing.T) {
	e := async.NewExecutor(2)
	defer e.Close()

	f := async.Go(e, context.Background(), func(context.Context) (int, error) {
		return 42, nil
	})
	v, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGoCompletesWithError(t *testing.T) {
	e := async.NewExecutor(2)
	defer e.Close()

	boom := errors.New("boom")
	f := async.Go(e, context.Background(), func(context.Context) (int, error) {
		return 0, boom
	})
	_, err := f.Result()
	require.ErrorIs(t, err, boom)
}

func TestWaitHonoursContext(t *testing.T) {
	e := async.NewExecutor(1)
	defer e.Close()

	release := make(chan struct{})
	f := async.Go(e, context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The call itself keeps running and still completes.
	close(release)
	v, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestExecutorBoundsConcurrency(t *testing.T) {
	const workers = 3
	e := async.NewExecutor(workers)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		f := async.Go(e, context.Background(), func(context.Context) (struct{}, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		})
		go func() {
			defer wg.Done()
			f.Result()
		}()
	}
	wg.Wait()
	e.Close()

	assert.LessOrEqual(t, peak.Load(), int32(workers))
}

func TestSubmitAfterClose(t *testing.T) {
	e := async.NewExecutor(1)
	e.Close()

	err := e.Submit(func() {})
	require.ErrorIs(t, err, async.ErrExecutorClosed)

	f := async.Go(e, context.Background(), func(context.Context) (int, error) {
		return 1, nil
	})
	_, err = f.Result()
	require.ErrorIs(t, err, async.ErrExecutorClosed)
}

func TestCancelStopsRunningCall(t *testing.T) {
	e := async.NewExecutor(1)
	defer e.Close()

	f := async.Go(e, context.Background(), func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	f.Cancel()

	_, err := f.Result()
	require.ErrorIs(t, err, context.Canceled)
}
