package serialqueue

import (
	"errors"
	"fmt"
)

var ErrInvalidInvocation = errors.New("invalid invocation")
var ErrNotSerializable = errors.New("item not serializable")

// SerializationError reports an item that could not be round-tripped through
// the value encoding. It matches ErrNotSerializable under errors.Is and
// exposes the encoder's error via Unwrap.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("item not serializable: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

func (e *SerializationError) Is(target error) bool { return target == ErrNotSerializable }

// TaskPanicError is the rejection reason of a submission whose task function
// panicked. Value holds the recovered panic value.
type TaskPanicError struct {
	Value any
}

func (e *TaskPanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}
