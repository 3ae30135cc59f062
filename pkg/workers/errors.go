package workers

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyStarted is returned by Start on a worker that was started before.
	ErrAlreadyStarted = errors.New("worker already started")
	// ErrInvalidWorkerState is returned by Kill and Join on a worker that was never started.
	ErrInvalidWorkerState = errors.New("worker was never started")
	// ErrJoinTimeout is returned by Join when the worker outlives the timeout.
	ErrJoinTimeout = errors.New("timed out waiting for worker to stop")
	// ErrKilled is the cancellation cause seen by a killed worker's context.
	ErrKilled = errors.New("worker killed")
)

// PanicError records a panic recovered at the worker boundary.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
