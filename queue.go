// Package serialqueue runs submitted task functions one at a time, strictly
// in submission order, whether each task completes synchronously or hands
// back a Future. It is meant for sharing a resource that tolerates only one
// in-flight operation at a time.
package serialqueue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SerialQueue serializes task execution through an internal chain of
// completion signals. Each submission waits on the previous signal and
// closes its own once it settles, so the chain itself is the lock: there is
// no dispatcher goroutine and no polling. The tail of the chain is the only
// shared mutable state and is swapped under the mutex.
type SerialQueue struct {
	mu   sync.Mutex
	tail <-chan struct{} // closed once all previously admitted work settled

	ctx      context.Context
	logger   zerolog.Logger
	inFlight atomic.Int32
}

// New returns an empty queue whose chain starts in the ready state.
func New(opts ...Option) *SerialQueue {
	ready := make(chan struct{})
	close(ready)
	q := &SerialQueue{
		tail:   ready,
		ctx:    context.Background(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue submits a task with an optional item and returns a Future that
// settles with the task's own outcome. The item is encoded immediately, so
// the task later receives a value snapshot and the caller may keep mutating
// the original. The Future is decoupled from the chain: a failing task, or
// a slow consumer of the Future, never delays or poisons later submissions.
//
// A nil task function or more than one item rejects the Future with
// ErrInvalidInvocation; a non-encodable item rejects it with a
// SerializationError. In both cases the chain is untouched and the task is
// never invoked. Enqueue itself never panics.
//
// Enqueue is safe for concurrent use, including from within a running task;
// such a re-entrant submission joins the back of the line.
func (q *SerialQueue) Enqueue(task TaskFunc, item ...any) *Future {
	if task == nil || len(item) > 1 {
		return rejectedFuture(ErrInvalidInvocation)
	}

	var enc encodedItem
	if len(item) == 1 {
		var err error
		if enc, err = encodeItem(item[0]); err != nil {
			return rejectedFuture(err)
		}
	}

	id := uuid.NewString()
	result := newFuture()
	next := make(chan struct{})

	q.mu.Lock()
	prev := q.tail
	q.tail = next
	q.mu.Unlock()

	q.inFlight.Add(1)
	q.logger.Debug().Str("submission", id).Bool("has_item", enc.present).Msg("enqueued")

	go func() {
		defer close(next) // the chain advances no matter how the task ends
		<-prev
		q.run(id, task, enc, result)
		q.inFlight.Add(-1)
	}()

	return result
}

// run executes one admitted submission and settles its Future.
func (q *SerialQueue) run(id string, task TaskFunc, enc encodedItem, result *Future) {
	item, err := enc.decode()
	if err != nil {
		q.logger.Debug().Str("submission", id).Err(err).Msg("decode failed")
		result.reject(err)
		return
	}

	q.logger.Debug().Str("submission", id).Msg("admitted")
	start := time.Now()

	value, err := q.invoke(task, Invocation{Item: item})
	if err == nil {
		// A task that started background work returns a Future; adopt its
		// eventual outcome before admitting the next submission.
		if inner, ok := value.(*Future); ok && inner != nil {
			<-inner.Done()
			value, err = inner.Result()
		}
	}

	if err != nil {
		q.logger.Debug().Str("submission", id).Dur("took", time.Since(start)).Err(err).Msg("task failed")
		result.reject(err)
		return
	}
	q.logger.Debug().Str("submission", id).Dur("took", time.Since(start)).Msg("task settled")
	result.fulfill(value)
}

// invoke calls the task function, converting a panic into an error so a
// misbehaving task cannot take the queue down with it.
func (q *SerialQueue) invoke(task TaskFunc, inv Invocation) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, err = nil, &TaskPanicError{Value: r}
		}
	}()
	return task(q.ctx, inv)
}

// InFlight reports how many submissions are chained or executing but not
// yet settled.
func (q *SerialQueue) InFlight() int32 {
	return q.inFlight.Load()
}

// Wait blocks until every submission enqueued before the call has settled,
// or ctx is done.
func (q *SerialQueue) Wait(ctx context.Context) error {
	q.mu.Lock()
	tail := q.tail
	q.mu.Unlock()
	select {
	case <-tail:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
