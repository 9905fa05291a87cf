package serialqueue

import "context"

// Future is the caller-visible result of an Enqueue call. It settles exactly
// once and is independent of the queue's internal progression, so callers
// may wait on it, or ignore it, without delaying later submissions.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func rejectedFuture(err error) *Future {
	f := newFuture()
	f.reject(err)
	return f
}

// fulfill and reject settle the future. Called at most once, by the queue.
func (f *Future) fulfill(v any) {
	f.value = v
	close(f.done)
}

func (f *Future) reject(err error) {
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed once the future has settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx is done.
func (f *Future) Wait(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result reports the settled outcome. Only valid after Done is closed.
func (f *Future) Result() (any, error) {
	return f.value, f.err
}

// Go runs fn in its own goroutine and returns a Future settled with its
// outcome. A task function that starts background work can return this
// Future as its result; the queue then waits for it to settle before
// admitting the next submission.
func Go(fn func() (any, error)) *Future {
	f := newFuture()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.reject(&TaskPanicError{Value: r})
			}
		}()
		v, err := fn()
		if err != nil {
			f.reject(err)
			return
		}
		f.fulfill(v)
	}()
	return f
}
