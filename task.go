package serialqueue

import "context"

// Invocation is the argument passed to a task function. Item holds the
// decoded item value, or nil when the submission carried no item.
type Invocation struct {
	Item any
}

// TaskFunc is the callable run by the queue. Returning a *Future as the
// result value hands the queue asynchronous work to adopt; any other value
// fulfills the submission directly.
type TaskFunc func(ctx context.Context, inv Invocation) (any, error)
