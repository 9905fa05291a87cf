package serialqueue

import (
	"context"

	"github.com/rs/zerolog"
)

// Option configures a SerialQueue at construction time.
type Option func(*SerialQueue)

// WithLogger sets the logger for per-submission debug events. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(q *SerialQueue) { q.logger = logger }
}

// WithContext sets the base context passed to task functions. Defaults to
// context.Background().
func WithContext(ctx context.Context) Option {
	return func(q *SerialQueue) { q.ctx = ctx }
}
