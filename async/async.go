// Package async provides a bounded executor and a generic future, the
// run-on-pool-and-signal-completion machinery behind the SDK's async
// client facade.
package async

import (
	"context"
	"errors"
	"sync"
)

// ErrExecutorClosed is returned by futures whose work was submitted after
// the executor shut down.
var ErrExecutorClosed = errors.New("async: executor closed")

// Future represents the eventual result of one submitted call. It is
// completed exactly once, with either a value or an error.
type Future[T any] struct {
	done   chan struct{}
	once   sync.Once
	val    T
	err    error
	cancel context.CancelFunc
}

func (f *Future[T]) complete(v T, err error) {
	f.once.Do(func() {
		f.val = v
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the future completes or ctx expires. On ctx expiry it
// returns ctx's error; the underlying call keeps running.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the future completes and returns its outcome.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.val, f.err
}

// Cancel is an advisory cancellation signal: it cancels the context seen
// by the underlying call. The remote operation is not guaranteed to abort.
func (f *Future[T]) Cancel() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Executor runs submitted work with bounded concurrency. The zero value is
// not usable; construct with NewExecutor.
type Executor struct {
	sem chan struct{}
	wg  sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// DefaultWorkers bounds concurrency when NewExecutor is given a
// non-positive worker count.
const DefaultWorkers = 8

// NewExecutor returns an executor allowing at most workers concurrent
// tasks.
func NewExecutor(workers int) *Executor {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Executor{sem: make(chan struct{}, workers)}
}

// begin registers one pending task, failing if the executor is closed.
func (e *Executor) begin() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrExecutorClosed
	}
	e.wg.Add(1)
	return nil
}

func (e *Executor) end() { e.wg.Done() }

// Submit enqueues fn and returns immediately. fn runs once a worker slot
// frees up. Submitting after Close returns ErrExecutorClosed.
func (e *Executor) Submit(fn func()) error {
	if err := e.begin(); err != nil {
		return err
	}
	go func() {
		defer e.end()
		e.sem <- struct{}{}
		defer func() { <-e.sem }()
		fn()
	}()
	return nil
}

// Close stops accepting work and waits for in-flight tasks to finish.
func (e *Executor) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.wg.Wait()
}

// Go submits fn to the executor and returns a future for its result. The
// future's Cancel cancels the context passed to fn; a call cancelled
// while still waiting for a worker slot completes with the context's
// error without ever running.
func Go[T any](e *Executor, ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{done: make(chan struct{}), cancel: cancel}

	if err := e.begin(); err != nil {
		cancel()
		var zero T
		f.complete(zero, err)
		return f
	}

	go func() {
		defer e.end()
		defer cancel()
		select {
		case e.sem <- struct{}{}:
			defer func() { <-e.sem }()
			if err := ctx.Err(); err != nil {
				var zero T
				f.complete(zero, err)
				return
			}
			v, err := fn(ctx)
			f.complete(v, err)
		case <-ctx.Done():
			var zero T
			f.complete(zero, ctx.Err())
		}
	}()
	return f
}
